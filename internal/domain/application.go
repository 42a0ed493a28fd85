package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateApplication is returned by the repository when the storage
// uniqueness constraint on (job_seeker_email, job_id) rejects an insert.
// The constraint, not the usecase pre-check, is the source of truth under
// concurrent applies.
var ErrDuplicateApplication = errors.New("application already exists")

// JobApplication links a job seeker to a listing. The employer email is
// copied from the listing at apply time so the row stays meaningful if the
// listing is later deleted.
type JobApplication struct {
	ID             int64     `json:"id"`
	JobSeekerEmail string    `json:"job_seeker_email"`
	EmployerEmail  string    `json:"employer_email"`
	JobID          int64     `json:"job_id"`
	AppliedAt      time.Time `json:"applied_at"`

	// Joined at read time. Both are nullable: Job is nil when the listing
	// has been deleted, JobSeekerProfile is nil when none exists.
	Job              *JobListing       `json:"job,omitempty"`
	JobSeekerProfile *JobSeekerProfile `json:"job_seeker_profile,omitempty"`
}

type JobApplicationRepository interface {
	// Create inserts the application and surfaces a unique-constraint
	// violation as ErrDuplicateApplication.
	Create(ctx context.Context, app *JobApplication) error
	Exists(ctx context.Context, jobSeekerEmail string, jobID int64) (bool, error)
	// FetchAll returns every application joined with its listing (nil for
	// dangling job ids), most recent first.
	FetchAll(ctx context.Context) ([]JobApplication, error)
	FetchByEmployerEmail(ctx context.Context, email string) ([]JobApplication, error)
	FetchByJobSeekerEmail(ctx context.Context, email string) ([]JobApplication, error)
	Delete(ctx context.Context, id int64) error
}

type JobApplicationUsecase interface {
	Apply(ctx context.Context, jobSeekerEmail string, jobID int64) (*JobApplication, error)
	ListAll(ctx context.Context) ([]JobApplication, error)
	ListForEmployer(ctx context.Context, employerEmail string) ([]JobApplication, error)
	ListForJobSeeker(ctx context.Context, jobSeekerEmail string) ([]JobApplication, error)
	Delete(ctx context.Context, id int64) (*StatusResult, error)
}
