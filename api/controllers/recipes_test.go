package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/nutritrack-backend/api/middleware"
	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
	recipesvc "github.com/angelmondragon/nutritrack-backend/internal/recipes"
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type stubRecipeService struct {
	created   *recipesvc.CreateRecipeRequest
	owner     permissions.Principal
	uploadID  uint
	uploaded  []byte
	getErr    error
	uploadErr error
}

func (s *stubRecipeService) List(context.Context) ([]recipesvc.SummaryDTO, error) {
	return []recipesvc.SummaryDTO{
		{ID: 2, Title: "omelette", Calories: decimal.NewFromFloat(250.0)},
		{ID: 1, Title: "oats", Calories: decimal.NewFromFloat(339.0)},
	}, nil
}

func (s *stubRecipeService) Get(_ context.Context, id uint) (*recipesvc.DetailDTO, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &recipesvc.DetailDTO{ID: id, Title: "oats"}, nil
}

func (s *stubRecipeService) Create(_ context.Context, principal permissions.Principal, req recipesvc.CreateRecipeRequest) (*recipesvc.DetailDTO, error) {
	s.created = &req
	s.owner = principal
	return &recipesvc.DetailDTO{ID: 1, Title: req.Title}, nil
}

func (s *stubRecipeService) Update(_ context.Context, id uint, req recipesvc.CreateRecipeRequest) (*recipesvc.DetailDTO, error) {
	return &recipesvc.DetailDTO{ID: id, Title: req.Title}, nil
}

func (s *stubRecipeService) PartialUpdate(_ context.Context, id uint, _ recipesvc.UpdateRecipeRequest) (*recipesvc.DetailDTO, error) {
	return &recipesvc.DetailDTO{ID: id, Title: "oats"}, nil
}

func (s *stubRecipeService) Delete(context.Context, uint) error { return nil }

func (s *stubRecipeService) UploadImage(_ context.Context, _ permissions.Principal, id uint, data []byte) (*recipesvc.ImageDTO, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploadID = id
	s.uploaded = data
	path := "recipes/file.png"
	return &recipesvc.ImageDTO{ID: id, Image: &path}, nil
}

func withRouteID(req *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestRecipeListReturnsSummaries(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/recipe/recipes", nil)
	rec := httptest.NewRecorder()
	RecipeList(&stubRecipeService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(envelope.Data))
	}
	if _, ok := envelope.Data[0]["ingredients"]; ok {
		t.Fatalf("summaries must not carry detail fields: %+v", envelope.Data[0])
	}
}

func TestRecipeCreateForwardsPrincipal(t *testing.T) {
	stub := &stubRecipeService{}
	body := `{"title":"oats","category":"breakfast","time_minutes":15,"calories":339.0,"protein":12.5,"carbs":44.0,"fibers":0.0,"fat":11.1,"user":999}`
	req := httptest.NewRequest(http.MethodPost, "/recipe/recipes", strings.NewReader(body))
	req = req.WithContext(middleware.WithPrincipal(req.Context(), permissions.Principal{UserID: 5, IsStaff: true}))
	rec := httptest.NewRecorder()
	RecipeCreate(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.owner.UserID != 5 {
		t.Fatalf("expected owner from context, got %+v", stub.owner)
	}
	if stub.created == nil || stub.created.Fibers == nil || !stub.created.Fibers.IsZero() {
		t.Fatalf("zero fibers must survive decoding: %+v", stub.created)
	}
}

func TestRecipeCreateMissingFieldIs400(t *testing.T) {
	body := `{"title":"oats"}`
	req := httptest.NewRequest(http.MethodPost, "/recipe/recipes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	RecipeCreate(&stubRecipeService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Details["calories"] == "" {
		t.Fatalf("expected per-field details, got %+v", envelope.Error.Details)
	}
}

func TestRecipeDetailUnknownID(t *testing.T) {
	stub := &stubRecipeService{getErr: pkgerrors.New(pkgerrors.CodeNotFound, "recipe not found")}
	req := withRouteID(httptest.NewRequest(http.MethodGet, "/recipe/recipes/42", nil), "42")
	rec := httptest.NewRecorder()
	RecipeDetail(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRecipeDetailNonNumericID(t *testing.T) {
	req := withRouteID(httptest.NewRequest(http.MethodGet, "/recipe/recipes/abc", nil), "abc")
	rec := httptest.NewRecorder()
	RecipeDetail(&stubRecipeService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric id, got %d", rec.Code)
	}
}

func TestRecipeDeleteReturns204(t *testing.T) {
	req := withRouteID(httptest.NewRequest(http.MethodDelete, "/recipe/recipes/1", nil), "1")
	rec := httptest.NewRecorder()
	RecipeDelete(&stubRecipeService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func multipartImage(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "upload.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestRecipeUploadImage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubRecipeService{}
		payload := []byte("\x89PNG\r\n\x1a\nfakepixels")
		body, contentType := multipartImage(t, "image", payload)

		req := withRouteID(httptest.NewRequest(http.MethodPost, "/recipe/recipes/3/upload-image", body), "3")
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middleware.WithPrincipal(req.Context(), permissions.Principal{UserID: 1, IsStaff: true}))
		rec := httptest.NewRecorder()
		RecipeUploadImage(stub, 10, testLogger()).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.uploadID != 3 || !bytes.Equal(stub.uploaded, payload) {
			t.Fatalf("upload not forwarded: id=%d", stub.uploadID)
		}
	})

	t.Run("missing file field is 400", func(t *testing.T) {
		body, contentType := multipartImage(t, "picture", []byte("data"))
		req := withRouteID(httptest.NewRequest(http.MethodPost, "/recipe/recipes/3/upload-image", body), "3")
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		RecipeUploadImage(&stubRecipeService{}, 10, testLogger()).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("non-staff refusal surfaces as 403", func(t *testing.T) {
		stub := &stubRecipeService{uploadErr: pkgerrors.New(pkgerrors.CodeForbidden, "staff privilege required")}
		body, contentType := multipartImage(t, "image", []byte("\x89PNG\r\n\x1a\npixels"))
		req := withRouteID(httptest.NewRequest(http.MethodPost, "/recipe/recipes/3/upload-image", body), "3")
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middleware.WithPrincipal(req.Context(), permissions.Principal{UserID: 2}))
		rec := httptest.NewRecorder()
		RecipeUploadImage(stub, 10, testLogger()).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
