package usecase

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.JobApplicationRepository
	listingRepo     domain.JobListingRepository
	profileRepo     domain.JobSeekerRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.JobApplicationRepository,
	listingRepo domain.JobListingRepository,
	profileRepo domain.JobSeekerRepository,
) domain.JobApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		listingRepo:     listingRepo,
		profileRepo:     profileRepo,
	}
}

// Apply creates an application for the listing. The employer email is copied
// from the listing, not taken from the caller. The existence pre-check is a
// fast path only: the storage uniqueness constraint decides the winner when
// two applies race, and both outcomes surface as the same AlreadyApplied
// conflict.
func (uc *applicationUsecase) Apply(ctx context.Context, jobSeekerEmail string, jobID int64) (*domain.JobApplication, error) {
	jobSeekerEmail = normalizeEmail(jobSeekerEmail)

	listing, err := uc.listingRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job listing not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := uc.applicationRepo.Exists(ctx, jobSeekerEmail, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("Already applied to this job")
	}

	app := &domain.JobApplication{
		JobSeekerEmail: jobSeekerEmail,
		EmployerEmail:  normalizeEmail(listing.Email),
		JobID:          jobID,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			// Lost the race between the pre-check and the insert.
			return nil, apperror.Conflict("Already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	app.Job = listing
	return app, nil
}

// ListAll returns every application for administrative review, joined with
// its listing and the applicant's profile, most recent first.
func (uc *applicationUsecase) ListAll(ctx context.Context) ([]domain.JobApplication, error) {
	if role, ok := ctx.Value(domain.KeyUserRole).(string); !ok || role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Only admins can view all applications")
	}

	apps, err := uc.applicationRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	uc.resolveProfiles(ctx, apps)
	return apps, nil
}

func (uc *applicationUsecase) ListForEmployer(ctx context.Context, employerEmail string) ([]domain.JobApplication, error) {
	apps, err := uc.applicationRepo.FetchByEmployerEmail(ctx, normalizeEmail(employerEmail))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	uc.resolveProfiles(ctx, apps)
	return apps, nil
}

func (uc *applicationUsecase) ListForJobSeeker(ctx context.Context, jobSeekerEmail string) ([]domain.JobApplication, error) {
	apps, err := uc.applicationRepo.FetchByJobSeekerEmail(ctx, normalizeEmail(jobSeekerEmail))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// Delete acts as the employer's reject/withdraw action.
func (uc *applicationUsecase) Delete(ctx context.Context, id int64) (*domain.StatusResult, error) {
	if err := uc.applicationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job application not found")
		}
		return nil, apperror.Internal(err)
	}
	return &domain.StatusResult{
		Success: true,
		Message: "Job application deleted successfully",
	}, nil
}

// resolveProfiles attaches the applicant's profile by normalized email.
// A missing profile is tolerated and left nil; a lookup failure only logs.
func (uc *applicationUsecase) resolveProfiles(ctx context.Context, apps []domain.JobApplication) {
	for i := range apps {
		profile, err := uc.profileRepo.GetByEmail(ctx, normalizeEmail(apps[i].JobSeekerEmail))
		if err != nil {
			logger.Log.Warn("Failed to resolve job seeker profile",
				"email", apps[i].JobSeekerEmail, "error", err)
			continue
		}
		apps[i].JobSeekerProfile = profile
	}
}
