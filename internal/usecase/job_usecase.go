package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type jobUsecase struct {
	listingRepo domain.JobListingRepository
	now         func() time.Time
}

func NewJobListingUsecase(listingRepo domain.JobListingRepository) domain.JobListingUsecase {
	return &jobUsecase{listingRepo: listingRepo, now: time.Now}
}

func (u *jobUsecase) CreateListing(ctx context.Context, listing *domain.JobListing) (*domain.JobListing, error) {
	switch listing.JobType {
	case domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeFreelance:
	default:
		return nil, apperror.BadRequest("Job type must be full-time, part-time or freelance")
	}

	listing.Email = normalizeEmail(listing.Email)

	if err := u.listingRepo.Create(ctx, listing); err != nil {
		return nil, apperror.Internal(err)
	}
	return listing, nil
}

func (u *jobUsecase) GetDetails(ctx context.Context, id int64) (*domain.JobListingView, error) {
	listing, err := u.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job listing not found")
		}
		return nil, apperror.Internal(err)
	}
	view := u.toView(*listing)
	return &view, nil
}

// ListAll returns every listing; the store does no activity filtering.
func (u *jobUsecase) ListAll(ctx context.Context) ([]domain.JobListingView, error) {
	listings, err := u.listingRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.toViews(listings), nil
}

// ListActive filters the full set down to the browsing window here, on the
// consumer side: the half-open interval start <= today < end.
func (u *jobUsecase) ListActive(ctx context.Context) ([]domain.JobListingView, error) {
	listings, err := u.listingRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := u.now()
	active := make([]domain.JobListing, 0, len(listings))
	for _, listing := range listings {
		if listing.ActiveAt(now) {
			active = append(active, listing)
		}
	}
	return u.toViews(active), nil
}

// ListByEmail is the employer's own view: every posting regardless of its
// active window.
func (u *jobUsecase) ListByEmail(ctx context.Context, email string) ([]domain.JobListingView, error) {
	listings, err := u.listingRepo.FetchByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.toViews(listings), nil
}

func (u *jobUsecase) ListPaged(ctx context.Context, email string, page, limit int) (*domain.PaginatedResult[domain.JobListingView], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	if email != "" {
		email = normalizeEmail(email)
	}

	offset := (page - 1) * limit
	listings, total, err := u.listingRepo.Fetch(ctx, email, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.PaginatedResult[domain.JobListingView]{
		Data:       u.toViews(listings),
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (u *jobUsecase) UpdateListing(ctx context.Context, id int64, upd *domain.JobListingUpdate) (*domain.JobListing, error) {
	if upd.JobType != nil {
		switch *upd.JobType {
		case domain.JobTypeFullTime, domain.JobTypePartTime, domain.JobTypeFreelance:
		default:
			return nil, apperror.BadRequest("Job type must be full-time, part-time or freelance")
		}
	}
	if upd.Email != nil {
		normalized := normalizeEmail(*upd.Email)
		upd.Email = &normalized
	}

	listing, err := u.listingRepo.UpdatePartial(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job listing not found")
		}
		return nil, apperror.Internal(err)
	}
	return listing, nil
}

// DeleteListing removes the posting. Applications pointing at it stay in
// the store and resolve to a null job afterwards.
func (u *jobUsecase) DeleteListing(ctx context.Context, id int64) (string, error) {
	if err := u.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Job listing not found")
		}
		return "", apperror.Internal(err)
	}
	return "Job listing deleted successfully", nil
}

func (u *jobUsecase) toView(listing domain.JobListing) domain.JobListingView {
	return domain.JobListingView{
		JobListing: listing,
		Status:     listing.StatusAt(u.now()),
	}
}

func (u *jobUsecase) toViews(listings []domain.JobListing) []domain.JobListingView {
	views := make([]domain.JobListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, u.toView(listing))
	}
	return views
}
