package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the activity catalog operations.
type Service interface {
	List(ctx context.Context) ([]ActivityDTO, error)
	Get(ctx context.Context, id uint) (*ActivityDTO, error)
	Create(ctx context.Context, principal permissions.Principal, req CreateActivityRequest) (*ActivityDTO, error)
	Update(ctx context.Context, id uint, req CreateActivityRequest) (*ActivityDTO, error)
	PartialUpdate(ctx context.Context, id uint, req UpdateActivityRequest) (*ActivityDTO, error)
	Delete(ctx context.Context, id uint) error
}

type activityRepository interface {
	List(ctx context.Context) ([]models.Activity, error)
	FindByID(ctx context.Context, id uint) (*models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo activityRepository
}

// NewService constructs an activity service.
func NewService(repo activityRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("activity repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ActivityDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list activities")
	}
	out := make([]ActivityDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *fromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uint) (*ActivityDTO, error) {
	activity, err := s.findActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromModel(activity), nil
}

func (s *service) Create(ctx context.Context, principal permissions.Principal, req CreateActivityRequest) (*ActivityDTO, error) {
	activity := &models.Activity{
		UserID: principal.UserID,
		Title:  req.Title,
		MET:    *req.MET,
	}
	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create activity")
	}
	return fromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uint, req CreateActivityRequest) (*ActivityDTO, error) {
	return s.PartialUpdate(ctx, id, req.ToPartial())
}

func (s *service) PartialUpdate(ctx context.Context, id uint, req UpdateActivityRequest) (*ActivityDTO, error) {
	if _, err := s.findActivity(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.MET != nil {
		fields["met"] = *req.MET
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update activity")
	}

	updated, err := s.findActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return activityNotFound()
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete activity")
	}
	return nil
}

func (s *service) findActivity(ctx context.Context, id uint) (*models.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, activityNotFound()
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load activity")
	}
	return activity, nil
}

func activityNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "activity not found")
}
