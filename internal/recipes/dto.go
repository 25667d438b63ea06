package recipes

import (
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// SummaryDTO is the compact row shape used by the list endpoint.
type SummaryDTO struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Calories decimal.Decimal `json:"calories"`
}

// DetailDTO is the full recipe shape used by retrieve, create and update.
type DetailDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	TimeMinutes int             `json:"time_minutes"`
	Calories    decimal.Decimal `json:"calories"`
	Protein     decimal.Decimal `json:"protein"`
	Carbs       decimal.Decimal `json:"carbs"`
	Fibers      decimal.Decimal `json:"fibers"`
	Fat         decimal.Decimal `json:"fat"`
	Description string          `json:"description"`
	Ingredients string          `json:"ingredients"`
	Image       *string         `json:"image,omitempty"`
}

// ImageDTO is returned by the upload endpoint.
type ImageDTO struct {
	ID    uint    `json:"id"`
	Image *string `json:"image"`
}

// CreateRecipeRequest carries a new recipe. Numeric fields are pointers so a
// legitimate zero (e.g. fibers 0.0) passes the required check.
type CreateRecipeRequest struct {
	Title       string           `json:"title" validate:"required,max=255"`
	Category    string           `json:"category" validate:"required,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"required,min=0"`
	Calories    *decimal.Decimal `json:"calories" validate:"required"`
	Protein     *decimal.Decimal `json:"protein" validate:"required"`
	Carbs       *decimal.Decimal `json:"carbs" validate:"required"`
	Fibers      *decimal.Decimal `json:"fibers" validate:"required"`
	Fat         *decimal.Decimal `json:"fat" validate:"required"`
	Description string           `json:"description"`
	Ingredients string           `json:"ingredients"`
}

// UpdateRecipeRequest carries a partial update; absent fields keep their
// stored value.
type UpdateRecipeRequest struct {
	Title       *string          `json:"title" validate:"omitempty,max=255"`
	Category    *string          `json:"category" validate:"omitempty,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"omitempty,min=0"`
	Calories    *decimal.Decimal `json:"calories"`
	Protein     *decimal.Decimal `json:"protein"`
	Carbs       *decimal.Decimal `json:"carbs"`
	Fibers      *decimal.Decimal `json:"fibers"`
	Fat         *decimal.Decimal `json:"fat"`
	Description *string          `json:"description"`
	Ingredients *string          `json:"ingredients"`
}

// ToPartial converts a full replace payload into the partial form so both
// paths share one update code path.
func (r CreateRecipeRequest) ToPartial() UpdateRecipeRequest {
	return UpdateRecipeRequest{
		Title:       &r.Title,
		Category:    &r.Category,
		TimeMinutes: r.TimeMinutes,
		Calories:    r.Calories,
		Protein:     r.Protein,
		Carbs:       r.Carbs,
		Fibers:      r.Fibers,
		Fat:         r.Fat,
		Description: &r.Description,
		Ingredients: &r.Ingredients,
	}
}

func summaryFromModel(m *models.Recipe) SummaryDTO {
	return SummaryDTO{ID: m.ID, Title: m.Title, Calories: m.Calories}
}

func detailFromModel(m *models.Recipe) *DetailDTO {
	if m == nil {
		return nil
	}
	return &DetailDTO{
		ID:          m.ID,
		Title:       m.Title,
		Category:    m.Category,
		TimeMinutes: m.TimeMinutes,
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fibers:      m.Fibers,
		Fat:         m.Fat,
		Description: m.Description,
		Ingredients: m.Ingredients,
		Image:       m.Image,
	}
}
