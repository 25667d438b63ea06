package foods

import (
	"context"

	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes food persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a foods repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all foods, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Food, error) {
	var rows []models.Food
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a food by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// Create inserts a new food and returns the persisted model.
func (r *Repository) Create(ctx context.Context, food *models.Food) (*models.Food, error) {
	if err := r.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// UpdateFields applies the provided column values to the food row.
func (r *Repository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Food{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the food row.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Food{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
