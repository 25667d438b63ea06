package activities

import (
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ActivityDTO is the transport shape of an exercise entry.
type ActivityDTO struct {
	ID    uint            `json:"id"`
	Title string          `json:"title"`
	MET   decimal.Decimal `json:"met"`
}

// CreateActivityRequest carries a new activity. MET is a pointer so a zero
// value passes the required check.
type CreateActivityRequest struct {
	Title string           `json:"title" validate:"required,max=255"`
	MET   *decimal.Decimal `json:"met" validate:"required"`
}

// UpdateActivityRequest carries a partial update.
type UpdateActivityRequest struct {
	Title *string          `json:"title" validate:"omitempty,max=255"`
	MET   *decimal.Decimal `json:"met"`
}

// ToPartial converts a full replace payload into the partial form.
func (r CreateActivityRequest) ToPartial() UpdateActivityRequest {
	return UpdateActivityRequest{Title: &r.Title, MET: r.MET}
}

func fromModel(m *models.Activity) *ActivityDTO {
	if m == nil {
		return nil
	}
	return &ActivityDTO{ID: m.ID, Title: m.Title, MET: m.MET}
}
