package recipes

import (
	"context"
	"testing"

	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecipesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	recipes := `
CREATE TABLE IF NOT EXISTS recipes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  time_minutes INTEGER NOT NULL,
  calories NUMERIC NOT NULL,
  protein NUMERIC NOT NULL,
  carbs NUMERIC NOT NULL,
  fibers NUMERIC NOT NULL,
  fat NUMERIC NOT NULL,
  description TEXT,
  ingredients TEXT,
  image TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(recipes).Error)
	return db
}

func newRecipe(t *testing.T, db *gorm.DB, title string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		UserID:      1,
		Title:       title,
		Category:    "breakfast",
		TimeMinutes: 15,
		Calories:    decimal.NewFromFloat(339.0),
		Protein:     decimal.NewFromFloat(12.5),
		Carbs:       decimal.NewFromFloat(44.0),
		Fibers:      decimal.NewFromFloat(0.0),
		Fat:         decimal.NewFromFloat(11.1),
		Description: "quick oats",
		Ingredients: "oats, milk, honey",
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func TestRepositoryListNewestFirst(t *testing.T) {
	db := setupRecipesTestDB(t)
	repo := NewRepository(db)

	first := newRecipe(t, db, "oats")
	second := newRecipe(t, db, "omelette")

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}

func TestRepositoryFindByID(t *testing.T) {
	db := setupRecipesTestDB(t)
	repo := NewRepository(db)

	created := newRecipe(t, db, "oats")

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "oats", got.Title)
	assert.True(t, got.Calories.Equal(decimal.NewFromFloat(339.0)))

	_, err = repo.FindByID(context.Background(), created.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryUpdateFields(t *testing.T) {
	db := setupRecipesTestDB(t)
	repo := NewRepository(db)

	created := newRecipe(t, db, "oats")

	err := repo.UpdateFields(context.Background(), created.ID, map[string]any{
		"title":    "overnight oats",
		"calories": decimal.NewFromFloat(410.5),
	})
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "overnight oats", got.Title)
	assert.True(t, got.Calories.Equal(decimal.NewFromFloat(410.5)))
	assert.Equal(t, "breakfast", got.Category, "untouched columns must survive")
}

func TestRepositoryUpdateImage(t *testing.T) {
	db := setupRecipesTestDB(t)
	repo := NewRepository(db)

	created := newRecipe(t, db, "oats")
	require.Nil(t, created.Image)

	require.NoError(t, repo.UpdateImage(context.Background(), created.ID, "recipes/abc.png"))

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Image)
	assert.Equal(t, "recipes/abc.png", *got.Image)
}

func TestRepositoryDelete(t *testing.T) {
	db := setupRecipesTestDB(t)
	repo := NewRepository(db)

	created := newRecipe(t, db, "oats")

	require.NoError(t, repo.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, repo.Delete(context.Background(), created.ID), gorm.ErrRecordNotFound)
}
