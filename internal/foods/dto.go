package foods

import (
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// SummaryDTO is the list projection of a food item.
type SummaryDTO struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Calories decimal.Decimal `json:"calories"`
}

// FoodDTO is the transport shape of a trackable food item.
type FoodDTO struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	Calories  decimal.Decimal `json:"calories"`
	Carbs     decimal.Decimal `json:"carbs"`
	Fibers    decimal.Decimal `json:"fibers"`
	Fat       decimal.Decimal `json:"fat"`
	Protein   decimal.Decimal `json:"protein"`
	Estimates string          `json:"estimates"`
}

// CreateFoodRequest carries a new food item. Macros are pointers so a zero
// value passes the required check.
type CreateFoodRequest struct {
	Title     string           `json:"title" validate:"required,max=255"`
	Calories  *decimal.Decimal `json:"calories" validate:"required"`
	Carbs     *decimal.Decimal `json:"carbs" validate:"required"`
	Fibers    *decimal.Decimal `json:"fibers" validate:"required"`
	Fat       *decimal.Decimal `json:"fat" validate:"required"`
	Protein   *decimal.Decimal `json:"protein" validate:"required"`
	Estimates string           `json:"estimates"`
}

// UpdateFoodRequest carries a partial update; absent fields keep their value.
type UpdateFoodRequest struct {
	Title     *string          `json:"title" validate:"omitempty,max=255"`
	Calories  *decimal.Decimal `json:"calories"`
	Carbs     *decimal.Decimal `json:"carbs"`
	Fibers    *decimal.Decimal `json:"fibers"`
	Fat       *decimal.Decimal `json:"fat"`
	Protein   *decimal.Decimal `json:"protein"`
	Estimates *string          `json:"estimates"`
}

// ToPartial converts a full replace payload into the partial form.
func (r CreateFoodRequest) ToPartial() UpdateFoodRequest {
	return UpdateFoodRequest{
		Title:     &r.Title,
		Calories:  r.Calories,
		Carbs:     r.Carbs,
		Fibers:    r.Fibers,
		Fat:       r.Fat,
		Protein:   r.Protein,
		Estimates: &r.Estimates,
	}
}

func summaryFromModel(m *models.Food) SummaryDTO {
	return SummaryDTO{
		ID:       m.ID,
		Title:    m.Title,
		Calories: m.Calories,
	}
}

func fromModel(m *models.Food) *FoodDTO {
	if m == nil {
		return nil
	}
	return &FoodDTO{
		ID:        m.ID,
		Title:     m.Title,
		Calories:  m.Calories,
		Carbs:     m.Carbs,
		Fibers:    m.Fibers,
		Fat:       m.Fat,
		Protein:   m.Protein,
		Estimates: m.Estimates,
	}
}
