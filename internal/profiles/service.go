package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/nutritrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/nutritrack-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service manages the caller's nutrition profile. The target row is always
// resolved from the authenticated user, never from a request parameter.
type Service interface {
	Get(ctx context.Context, userID uint) (*ProfileDTO, error)
	Update(ctx context.Context, userID uint, req UpdateProfileRequest) (*ProfileDTO, error)
}

type profileRepository interface {
	FindByUser(ctx context.Context, userID uint) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

type service struct {
	repo profileRepository
}

// NewService constructs a profile service.
func NewService(repo profileRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, userID uint) (*ProfileDTO, error) {
	profile, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// first access: an empty profile, not an error
			return FromModel(&models.Profile{UserID: userID}), nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return FromModel(profile), nil
}

func (s *service) Update(ctx context.Context, userID uint, req UpdateProfileRequest) (*ProfileDTO, error) {
	profile := &models.Profile{
		UserID:      userID,
		CalorieGoal: *req.CalorieGoal,
		Weight:      *req.Weight,
		Height:      *req.Height,
		Gender:      req.Gender,
	}

	saved, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save profile")
	}
	return FromModel(saved), nil
}
