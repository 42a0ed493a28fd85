package domain

import (
	"context"
	"time"
)

// Job types accepted on a listing.
const (
	JobTypeFullTime  = "full-time"
	JobTypePartTime  = "part-time"
	JobTypeFreelance = "freelance"
)

// Presentation status labels for a listing.
const (
	ListingStatusActive  = "Active"
	ListingStatusLastDay = "Last Day"
	ListingStatusExpired = "Expired"
)

// JobListing is a job posting owned by an employer account.
type JobListing struct {
	ID             int64     `json:"id"`
	JobTitle       string    `json:"job_title"`
	CompanyName    string    `json:"company_name"`
	JobDescription string    `json:"job_description"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	JobType        string    `json:"job_type"`
	Email          string    `json:"email"`
	UserID         int64     `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobListingView is a listing decorated with its presentation status label.
type JobListingView struct {
	JobListing
	Status string `json:"status"`
}

// JobListingUpdate carries a partial update: nil fields are dropped before
// the update is applied.
type JobListingUpdate struct {
	JobTitle       *string    `json:"job_title"`
	CompanyName    *string    `json:"company_name"`
	JobDescription *string    `json:"job_description"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	JobType        *string    `json:"job_type"`
	Email          *string    `json:"email"`
}

// day truncates t to midnight, dropping the time components.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ActiveAt reports whether the listing is inside its browsing window at the
// given moment: start date inclusive, end date exclusive.
func (l *JobListing) ActiveAt(now time.Time) bool {
	today := day(now)
	return !today.Before(day(l.StartDate)) && today.Before(day(l.EndDate))
}

// StatusAt returns the presentation label for the listing. This rule uses
// exact date equality and is intentionally not the same as the ActiveAt
// window: a listing whose end date equals tomorrow is "Last Day", one whose
// end date has passed is "Expired", everything else is "Active".
func (l *JobListing) StatusAt(now time.Time) string {
	today := day(now)
	end := day(l.EndDate)
	switch {
	case end.Before(today):
		return ListingStatusExpired
	case end.Equal(today.AddDate(0, 0, 1)):
		return ListingStatusLastDay
	default:
		return ListingStatusActive
	}
}

type JobListingRepository interface {
	Create(ctx context.Context, listing *JobListing) error
	GetByID(ctx context.Context, id int64) (*JobListing, error)
	// FetchAll returns every listing; activity windowing is the consumer's
	// responsibility, not a query filter.
	FetchAll(ctx context.Context) ([]JobListing, error)
	FetchByEmail(ctx context.Context, email string) ([]JobListing, error)
	// Fetch returns a page of listings, optionally filtered by posting email.
	Fetch(ctx context.Context, email string, limit, offset int) ([]JobListing, int64, error)
	UpdatePartial(ctx context.Context, id int64, upd *JobListingUpdate) (*JobListing, error)
	Delete(ctx context.Context, id int64) error
}

type JobListingUsecase interface {
	CreateListing(ctx context.Context, listing *JobListing) (*JobListing, error)
	GetDetails(ctx context.Context, id int64) (*JobListingView, error)
	ListAll(ctx context.Context) ([]JobListingView, error)
	ListActive(ctx context.Context) ([]JobListingView, error)
	ListByEmail(ctx context.Context, email string) ([]JobListingView, error)
	ListPaged(ctx context.Context, email string, page, limit int) (*PaginatedResult[JobListingView], error)
	UpdateListing(ctx context.Context, id int64, upd *JobListingUpdate) (*JobListing, error)
	DeleteListing(ctx context.Context, id int64) (string, error)
}
