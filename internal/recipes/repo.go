package recipes

import (
	"context"

	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes recipe persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a recipes repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all recipes, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Recipe, error) {
	var rows []models.Recipe
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a recipe by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a new recipe and returns the persisted model.
func (r *Repository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateFields applies the provided column values to the recipe row.
func (r *Repository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// UpdateImage stores the relative image path on the recipe row.
func (r *Repository) UpdateImage(ctx context.Context, id uint, path string) error {
	return r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Update("image", path).Error
}

// Delete removes the recipe row.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
