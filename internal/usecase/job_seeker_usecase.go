package usecase

import (
	"context"
	"errors"
	"net/http"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobSeekerUsecase struct {
	profileRepo domain.JobSeekerRepository
	validate    *validator.Validate
}

func NewJobSeekerUsecase(profileRepo domain.JobSeekerRepository, validate *validator.Validate) domain.JobSeekerUsecase {
	return &jobSeekerUsecase{profileRepo: profileRepo, validate: validate}
}

// GetProfileByEmail returns nil without an error when no profile exists.
// A stored profile with an empty name is corrupt state, not "not found".
func (u *jobSeekerUsecase) GetProfileByEmail(ctx context.Context, email string) (*domain.JobSeekerProfile, error) {
	profile, err := u.profileRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Error fetching job seeker profile", err)
	}
	if profile == nil {
		return nil, nil
	}
	if profile.Name == "" {
		return nil, apperror.Unprocessable("Job seeker profile name is missing")
	}
	return profile, nil
}

func (u *jobSeekerUsecase) CreateProfile(ctx context.Context, profile *domain.JobSeekerProfile) (*domain.JobSeekerProfile, error) {
	profile.Email = normalizeEmail(profile.Email)
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateProfile fully replaces the stored record, including wholesale
// replacement of the experience and education sequences. When the id does
// not resolve a new profile is created instead.
func (u *jobSeekerUsecase) UpdateProfile(ctx context.Context, profile *domain.JobSeekerProfile) (*domain.JobSeekerProfile, error) {
	profile.Email = normalizeEmail(profile.Email)
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	err := u.profileRepo.Replace(ctx, profile)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
