package usecase

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type employerProfileUsecase struct {
	profileRepo domain.EmployerProfileRepository
}

func NewEmployerProfileUsecase(profileRepo domain.EmployerProfileRepository) domain.EmployerProfileUsecase {
	return &employerProfileUsecase{profileRepo: profileRepo}
}

func (u *employerProfileUsecase) GetProfileByEmail(ctx context.Context, email string) (*domain.EmployerProfile, error) {
	profile, err := u.profileRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *employerProfileUsecase) CreateProfile(ctx context.Context, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	profile.EmployerEmail = normalizeEmail(profile.EmployerEmail)

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateProfile merges only the supplied fields into the stored record,
// unlike the job-seeker path which replaces everything.
func (u *employerProfileUsecase) UpdateProfile(ctx context.Context, id int64, upd *domain.EmployerProfileUpdate) (*domain.EmployerProfile, error) {
	profile, err := u.profileRepo.UpdatePartial(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
