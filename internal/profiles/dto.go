package profiles

import (
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProfileDTO is the transport shape of a user's nutrition targets.
type ProfileDTO struct {
	CalorieGoal decimal.Decimal `json:"calorie_goal"`
	Weight      decimal.Decimal `json:"weight"`
	Height      decimal.Decimal `json:"height"`
	Gender      string          `json:"gender"`
}

// UpdateProfileRequest replaces the caller's nutrition targets.
type UpdateProfileRequest struct {
	CalorieGoal *decimal.Decimal `json:"calorie_goal" validate:"required"`
	Weight      *decimal.Decimal `json:"weight" validate:"required"`
	Height      *decimal.Decimal `json:"height" validate:"required"`
	Gender      string           `json:"gender"`
}

func FromModel(p *models.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		CalorieGoal: p.CalorieGoal,
		Weight:      p.Weight,
		Height:      p.Height,
		Gender:      p.Gender,
	}
}
