package recipes

import (
	"context"
	"testing"

	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// pngBytes carries the PNG magic so content sniffing classifies it as image/png.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

type fakeRecipeRepo struct {
	nextID uint
	rows   map[uint]*models.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{nextID: 1, rows: map[uint]*models.Recipe{}}
}

func (f *fakeRecipeRepo) List(context.Context) ([]models.Recipe, error) {
	out := make([]models.Recipe, 0, len(f.rows))
	for id := f.nextID; id > 0; id-- {
		if r, ok := f.rows[id]; ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) FindByID(_ context.Context, id uint) (*models.Recipe, error) {
	if r, ok := f.rows[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepo) Create(_ context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.ID = f.nextID
	f.nextID++
	copied := *recipe
	f.rows[recipe.ID] = &copied
	return recipe, nil
}

func (f *fakeRecipeRepo) UpdateFields(_ context.Context, id uint, fields map[string]any) error {
	row, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, val := range fields {
		switch col {
		case "title":
			row.Title = val.(string)
		case "category":
			row.Category = val.(string)
		case "time_minutes":
			row.TimeMinutes = val.(int)
		case "calories":
			row.Calories = val.(decimal.Decimal)
		case "protein":
			row.Protein = val.(decimal.Decimal)
		case "carbs":
			row.Carbs = val.(decimal.Decimal)
		case "fibers":
			row.Fibers = val.(decimal.Decimal)
		case "fat":
			row.Fat = val.(decimal.Decimal)
		case "description":
			row.Description = val.(string)
		case "ingredients":
			row.Ingredients = val.(string)
		}
	}
	return nil
}

func (f *fakeRecipeRepo) UpdateImage(_ context.Context, id uint, path string) error {
	row, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.Image = &path
	return nil
}

func (f *fakeRecipeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeImageStore struct {
	saved   []string
	removed []string
}

func (f *fakeImageStore) Save(_ context.Context, prefix, ext string, _ []byte) (string, error) {
	rel := prefix + "/file-" + ext[1:] + ext
	f.saved = append(f.saved, rel)
	return rel, nil
}

func (f *fakeImageStore) Remove(_ context.Context, rel string) error {
	f.removed = append(f.removed, rel)
	return nil
}

func d(f float64) *decimal.Decimal {
	v := decimal.NewFromFloat(f)
	return &v
}

func intptr(v int) *int { return &v }

func strptr(v string) *string { return &v }

func validCreate() CreateRecipeRequest {
	return CreateRecipeRequest{
		Title:       "oats",
		Category:    "breakfast",
		TimeMinutes: intptr(15),
		Calories:    d(339.0),
		Protein:     d(12.5),
		Carbs:       d(44.0),
		Fibers:      d(0.0),
		Fat:         d(11.1),
		Description: "quick oats",
		Ingredients: "oats, milk",
	}
}

func testRecipeService(t *testing.T) (Service, *fakeRecipeRepo, *fakeImageStore) {
	t.Helper()

	repo := newFakeRecipeRepo()
	images := &fakeImageStore{}
	svc, err := NewService(ServiceParams{Repo: repo, Images: images})
	require.NoError(t, err)
	return svc, repo, images
}

func staff() permissions.Principal { return permissions.Principal{UserID: 1, IsStaff: true} }

func member() permissions.Principal { return permissions.Principal{UserID: 2} }

func TestCreateAssignsCallerAsOwner(t *testing.T) {
	svc, repo, _ := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, staff().UserID, repo.rows[created.ID].UserID)
	assert.True(t, created.Fibers.IsZero(), "zero macro values are legitimate")
	assert.Nil(t, created.Image)
}

func TestListReturnsSummariesNewestFirst(t *testing.T) {
	svc, _, _ := testRecipeService(t)

	_, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)
	second := validCreate()
	second.Title = "omelette"
	_, err = svc.Create(context.Background(), staff(), second)
	require.NoError(t, err)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "omelette", rows[0].Title)
	assert.Equal(t, "oats", rows[1].Title)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	svc, _, _ := testRecipeService(t)

	_, err := svc.Get(context.Background(), 42)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestPartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	svc, _, _ := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)

	updated, err := svc.PartialUpdate(context.Background(), created.ID, UpdateRecipeRequest{
		Title:    strptr("overnight oats"),
		Calories: d(410.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "overnight oats", updated.Title)
	assert.True(t, updated.Calories.Equal(decimal.NewFromFloat(410.5)))
	assert.Equal(t, "breakfast", updated.Category)
	assert.Equal(t, 15, updated.TimeMinutes)
}

func TestFullUpdateReplacesEverything(t *testing.T) {
	svc, _, _ := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)

	replacement := validCreate()
	replacement.Title = "granola"
	replacement.Description = ""
	updated, err := svc.Update(context.Background(), created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "granola", updated.Title)
	assert.Equal(t, "", updated.Description, "full update clears omitted text fields")
}

func TestDeleteThenDeleteAgain(t *testing.T) {
	svc, _, _ := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	err = svc.Delete(context.Background(), created.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUploadImageHappyPath(t *testing.T) {
	svc, repo, images := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)

	dto, err := svc.UploadImage(context.Background(), staff(), created.ID, pngBytes)
	require.NoError(t, err)
	require.NotNil(t, dto.Image)
	assert.Equal(t, created.ID, dto.ID)
	assert.Len(t, images.saved, 1)
	require.NotNil(t, repo.rows[created.ID].Image)
	assert.Equal(t, *dto.Image, *repo.rows[created.ID].Image)
}

func TestUploadImageReplacesPreviousFile(t *testing.T) {
	svc, _, images := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)

	first, err := svc.UploadImage(context.Background(), staff(), created.ID, pngBytes)
	require.NoError(t, err)
	_, err = svc.UploadImage(context.Background(), staff(), created.ID, pngBytes)
	require.NoError(t, err)

	assert.Contains(t, images.removed, *first.Image, "superseded file should be cleaned up")
}

func TestUploadImageRejectsNonImagePayload(t *testing.T) {
	svc, _, images := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)

	_, err = svc.UploadImage(context.Background(), staff(), created.ID, []byte("definitely not a picture"))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Empty(t, images.saved)
}

func TestUploadImageValidatesBeforeStaffCheck(t *testing.T) {
	svc, repo, images := testRecipeService(t)

	created, err := svc.Create(context.Background(), staff(), validCreate())
	require.NoError(t, err)

	// broken payload from a non-staff caller: the payload error wins
	_, err = svc.UploadImage(context.Background(), member(), created.ID, []byte("junk"))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	// valid payload from a non-staff caller: refused, nothing stored
	_, err = svc.UploadImage(context.Background(), member(), created.ID, pngBytes)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())
	assert.Empty(t, images.saved)
	assert.Nil(t, repo.rows[created.ID].Image)
}

func TestUploadImageUnknownRecipe(t *testing.T) {
	svc, _, _ := testRecipeService(t)

	_, err := svc.UploadImage(context.Background(), staff(), 99, pngBytes)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
