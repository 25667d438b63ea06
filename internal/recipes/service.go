package recipes

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the recipe catalog operations.
type Service interface {
	List(ctx context.Context) ([]SummaryDTO, error)
	Get(ctx context.Context, id uint) (*DetailDTO, error)
	Create(ctx context.Context, principal permissions.Principal, req CreateRecipeRequest) (*DetailDTO, error)
	Update(ctx context.Context, id uint, req CreateRecipeRequest) (*DetailDTO, error)
	PartialUpdate(ctx context.Context, id uint, req UpdateRecipeRequest) (*DetailDTO, error)
	Delete(ctx context.Context, id uint) error
	UploadImage(ctx context.Context, principal permissions.Principal, id uint, data []byte) (*ImageDTO, error)
}

type recipeRepository interface {
	List(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id uint) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	UpdateImage(ctx context.Context, id uint, path string) error
	Delete(ctx context.Context, id uint) error
}

type imageStore interface {
	Save(ctx context.Context, prefix, ext string, data []byte) (string, error)
	Remove(ctx context.Context, rel string) error
}

type service struct {
	repo   recipeRepository
	images imageStore
}

// ServiceParams bundles the dependencies required to build the recipe service.
type ServiceParams struct {
	Repo   recipeRepository
	Images imageStore
}

// NewService constructs a recipe service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("recipe repository is required")
	}
	if params.Images == nil {
		return nil, fmt.Errorf("image store is required")
	}
	return &service{repo: params.Repo, images: params.Images}, nil
}

func (s *service) List(ctx context.Context) ([]SummaryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list recipes")
	}
	out := make([]SummaryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, summaryFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uint) (*DetailDTO, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return detailFromModel(recipe), nil
}

func (s *service) Create(ctx context.Context, principal permissions.Principal, req CreateRecipeRequest) (*DetailDTO, error) {
	// The owner is always the caller; any owner field in the payload has
	// already been discarded by the decoder.
	recipe := &models.Recipe{
		UserID:      principal.UserID,
		Title:       req.Title,
		Category:    req.Category,
		TimeMinutes: *req.TimeMinutes,
		Calories:    *req.Calories,
		Protein:     *req.Protein,
		Carbs:       *req.Carbs,
		Fibers:      *req.Fibers,
		Fat:         *req.Fat,
		Description: req.Description,
		Ingredients: req.Ingredients,
	}
	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create recipe")
	}
	return detailFromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uint, req CreateRecipeRequest) (*DetailDTO, error) {
	return s.PartialUpdate(ctx, id, req.ToPartial())
}

func (s *service) PartialUpdate(ctx context.Context, id uint, req UpdateRecipeRequest) (*DetailDTO, error) {
	if _, err := s.findRecipe(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.TimeMinutes != nil {
		fields["time_minutes"] = *req.TimeMinutes
	}
	if req.Calories != nil {
		fields["calories"] = *req.Calories
	}
	if req.Protein != nil {
		fields["protein"] = *req.Protein
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
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Ingredients != nil {
		fields["ingredients"] = *req.Ingredients
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update recipe")
	}

	updated, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return detailFromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return recipeNotFound()
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete recipe")
	}
	if recipe.Image != nil {
		// best effort; the row is already gone
		_ = s.images.Remove(ctx, *recipe.Image)
	}
	return nil
}

// UploadImage attaches an image to a recipe. The payload is validated before
// authorization so a non-staff caller submitting a broken file still gets the
// validation error rather than the staff refusal.
func (s *service) UploadImage(ctx context.Context, principal permissions.Principal, id uint, data []byte) (*ImageDTO, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := sniffImage(data)
	if err != nil {
		return nil, err
	}

	if err := permissions.Check(permissions.ActionUpdate, &principal); err != nil {
		return nil, err
	}

	rel, err := s.images.Save(ctx, "recipes", ext, data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store image")
	}
	if err := s.repo.UpdateImage(ctx, id, rel); err != nil {
		_ = s.images.Remove(ctx, rel)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "attach image")
	}
	if recipe.Image != nil {
		_ = s.images.Remove(ctx, *recipe.Image)
	}
	return &ImageDTO{ID: id, Image: &rel}, nil
}

func (s *service) findRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recipeNotFound()
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load recipe")
	}
	return recipe, nil
}

func recipeNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "recipe not found")
}
