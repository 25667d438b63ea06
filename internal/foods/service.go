package foods

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the food catalog operations.
type Service interface {
	List(ctx context.Context) ([]SummaryDTO, error)
	Get(ctx context.Context, id uint) (*FoodDTO, error)
	Create(ctx context.Context, principal permissions.Principal, req CreateFoodRequest) (*FoodDTO, error)
	Update(ctx context.Context, id uint, req CreateFoodRequest) (*FoodDTO, error)
	PartialUpdate(ctx context.Context, id uint, req UpdateFoodRequest) (*FoodDTO, error)
	Delete(ctx context.Context, id uint) error
}

type foodRepository interface {
	List(ctx context.Context) ([]models.Food, error)
	FindByID(ctx context.Context, id uint) (*models.Food, error)
	Create(ctx context.Context, food *models.Food) (*models.Food, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo foodRepository
}

// NewService constructs a food service.
func NewService(repo foodRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("food repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]SummaryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list foods")
	}
	out := make([]SummaryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, summaryFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uint) (*FoodDTO, error) {
	food, err := s.findFood(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromModel(food), nil
}

func (s *service) Create(ctx context.Context, principal permissions.Principal, req CreateFoodRequest) (*FoodDTO, error) {
	food := &models.Food{
		UserID:    principal.UserID,
		Title:     req.Title,
		Calories:  *req.Calories,
		Carbs:     *req.Carbs,
		Fibers:    *req.Fibers,
		Fat:       *req.Fat,
		Protein:   *req.Protein,
		Estimates: req.Estimates,
	}
	created, err := s.repo.Create(ctx, food)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create food")
	}
	return fromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uint, req CreateFoodRequest) (*FoodDTO, error) {
	return s.PartialUpdate(ctx, id, req.ToPartial())
}

func (s *service) PartialUpdate(ctx context.Context, id uint, req UpdateFoodRequest) (*FoodDTO, error) {
	if _, err := s.findFood(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Calories != nil {
		fields["calories"] = *req.Calories
	}
	if req.Carbs != nil {
		fields["carbs"] = *req.Carbs
	}
	if req.Fibers != nil {
		fields["fibers"] = *req.Fibers
	}
	if req.Fat != nil {
		fields["fat"] = *req.Fat
	}
	if req.Protein != nil {
		fields["protein"] = *req.Protein
	}
	if req.Estimates != nil {
		fields["estimates"] = *req.Estimates
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update food")
	}

	updated, err := s.findFood(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return foodNotFound()
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete food")
	}
	return nil
}

func (s *service) findFood(ctx context.Context, id uint) (*models.Food, error) {
	food, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, foodNotFound()
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load food")
	}
	return food, nil
}

func foodNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "food not found")
}
