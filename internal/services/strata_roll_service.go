package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/repositories"
)

// StrataRollService manages the register of owners and their unit
// entitlements.
type StrataRollService interface {
	ListOwners(ctx context.Context, search string) ([]*models.Owner, error)
	GetOwner(ctx context.Context, id int64) (*models.Owner, error)
	CreateOwner(ctx context.Context, req dtos.CreateOwnerRequest) (*models.Owner, error)
	UpdateOwner(ctx context.Context, id int64, req dtos.UpdateOwnerRequest) (*models.Owner, error)
	DeleteOwner(ctx context.Context, id int64) error
}

type strataRollService struct {
	owners repositories.OwnerRepository
}

func NewStrataRollService(owners repositories.OwnerRepository) StrataRollService {
	return &strataRollService{owners: owners}
}

// ListOwners returns the roll in unit order, optionally narrowed to owners
// whose unit, name or email contains search.
func (s *strataRollService) ListOwners(ctx context.Context, search string) ([]*models.Owner, error) {
	all, err := s.owners.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	if search == "" {
		return all, nil
	}
	filtered := make([]*models.Owner, 0, len(all))
	for _, o := range all {
		if matchesAny(search, o.Unit, o.Name, o.Email) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *strataRollService) GetOwner(ctx context.Context, id int64) (*models.Owner, error) {
	o, err := s.owners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get owner %d: %w", id, err)
	}
	return o, nil
}

func (s *strataRollService) CreateOwner(ctx context.Context, req dtos.CreateOwnerRequest) (*models.Owner, error) {
	o := req.ToModel()
	if err := s.owners.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}
	return o, nil
}

func (s *strataRollService) UpdateOwner(ctx context.Context, id int64, req dtos.UpdateOwnerRequest) (*models.Owner, error) {
	o, err := s.GetOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(o)
	if err := s.owners.Update(ctx, o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update owner %d: %w", id, err)
	}
	return o, nil
}

func (s *strataRollService) DeleteOwner(ctx context.Context, id int64) error {
	ok, err := s.owners.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete owner %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
