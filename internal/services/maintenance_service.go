package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/repositories"
)

type MaintenanceService interface {
	ListRequests(ctx context.Context, search string) ([]*models.MaintenanceRequest, error)
	GetRequest(ctx context.Context, id int64) (*models.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, submittedBy string, req dtos.CreateMaintenanceRequestRequest) (*models.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id int64, req dtos.UpdateMaintenanceRequestRequest) (*models.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

type maintenanceService struct {
	requests repositories.MaintenanceRequestRepository
	notifier Notifier
	now      func() time.Time
}

func NewMaintenanceService(requests repositories.MaintenanceRequestRepository, notifier Notifier) MaintenanceService {
	return &maintenanceService{
		requests: requests,
		notifier: notifier,
		now:      time.Now,
	}
}

// ListRequests returns requests newest first, optionally narrowed to those
// whose title, unit or submitter contains search.
func (s *maintenanceService) ListRequests(ctx context.Context, search string) ([]*models.MaintenanceRequest, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	if search == "" {
		return all, nil
	}
	filtered := make([]*models.MaintenanceRequest, 0, len(all))
	for _, m := range all {
		if matchesAny(search, m.Title, m.Unit, m.SubmittedBy) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *maintenanceService) GetRequest(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	m, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get maintenance request %d: %w", id, err)
	}
	return m, nil
}

func (s *maintenanceService) CreateRequest(ctx context.Context, submittedBy string, req dtos.CreateMaintenanceRequestRequest) (*models.MaintenanceRequest, error) {
	m := req.ToModel(submittedBy, s.now())
	if err := s.requests.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}
	s.notifier.MaintenanceRequestCreated(ctx, m)
	return m, nil
}

func (s *maintenanceService) UpdateRequest(ctx context.Context, id int64, req dtos.UpdateMaintenanceRequestRequest) (*models.MaintenanceRequest, error) {
	m, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(m)
	if err := s.requests.Update(ctx, m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update maintenance request %d: %w", id, err)
	}
	return m, nil
}

// UpdateStatus is the edit path restricted to the status field. Any status
// is reachable from any other.
func (s *maintenanceService) UpdateStatus(ctx context.Context, id int64, status string) (*models.MaintenanceRequest, error) {
	return s.UpdateRequest(ctx, id, dtos.UpdateMaintenanceRequestRequest{Status: &status})
}

func (s *maintenanceService) DeleteRequest(ctx context.Context, id int64) error {
	ok, err := s.requests.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete maintenance request %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
