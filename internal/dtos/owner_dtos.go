package dtos

import "github.com/legend1349/USYDSTRATA2025/internal/models"

type OwnerResponse struct {
	ID          int64   `json:"id"`
	Unit        string  `json:"unit"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Entitlement float64 `json:"entitlement"`
}

type CreateOwnerRequest struct {
	Unit        string  `json:"unit" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone"`
	Entitlement float64 `json:"entitlement" validate:"gte=0,lte=100"`
}

// UpdateOwnerRequest is a partial patch; nil fields keep their stored value.
type UpdateOwnerRequest struct {
	Unit        *string  `json:"unit"`
	Name        *string  `json:"name"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Phone       *string  `json:"phone"`
	Entitlement *float64 `json:"entitlement" validate:"omitempty,gte=0,lte=100"`
}

func OwnerFromModel(o *models.Owner) OwnerResponse {
	return OwnerResponse{
		ID:          o.ID,
		Unit:        o.Unit,
		Name:        o.Name,
		Email:       o.Email,
		Phone:       o.Phone,
		Entitlement: o.Entitlement,
	}
}

func OwnersFromModels(list []*models.Owner) []OwnerResponse {
	out := make([]OwnerResponse, 0, len(list))
	for _, o := range list {
		out = append(out, OwnerFromModel(o))
	}
	return out
}

func (r CreateOwnerRequest) ToModel() *models.Owner {
	return &models.Owner{
		Unit:        r.Unit,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Entitlement: r.Entitlement,
	}
}

// Apply copies the set fields of the patch onto o.
func (r UpdateOwnerRequest) Apply(o *models.Owner) {
	if r.Unit != nil {
		o.Unit = *r.Unit
	}
	if r.Name != nil {
		o.Name = *r.Name
	}
	if r.Email != nil {
		o.Email = *r.Email
	}
	if r.Phone != nil {
		o.Phone = *r.Phone
	}
	if r.Entitlement != nil {
		o.Entitlement = *r.Entitlement
	}
}
