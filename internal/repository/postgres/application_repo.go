package postgres

import (
	"context"
	"errors"
	"time"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.JobApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique index on
// (job_seeker_email, job_id) is the source of truth for deduplication; a
// violation surfaces as ErrDuplicateApplication so a race between the
// usecase pre-check and this insert still yields exactly one stored row.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `
		INSERT INTO job_applications (job_seeker_email, employer_email, job_id, applied_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}

	err := r.db.QueryRow(ctx, query,
		app.JobSeekerEmail, app.EmployerEmail, app.JobID, app.AppliedAt,
	).Scan(&app.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

// Exists checks whether an application already exists for the pair.
func (r *applicationRepo) Exists(ctx context.Context, jobSeekerEmail string, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_seeker_email = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobSeekerEmail, jobID).Scan(&exists)
	return exists, err
}

const applicationJoinQuery = `
	SELECT
		a.id, a.job_seeker_email, a.employer_email, a.job_id, a.applied_at,
		j.id, j.job_title, j.company_name, j.job_description,
		j.start_date, j.end_date, j.job_type, j.email, j.user_id,
		j.created_at, j.updated_at
	FROM job_applications a
	LEFT JOIN job_listings j ON a.job_id = j.id`

func (r *applicationRepo) FetchAll(ctx context.Context) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, applicationJoinQuery+` ORDER BY a.applied_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepo) FetchByEmployerEmail(ctx context.Context, email string) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, applicationJoinQuery+` WHERE a.employer_email = $1 ORDER BY a.applied_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepo) FetchByJobSeekerEmail(ctx context.Context, email string) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, applicationJoinQuery+` WHERE a.job_seeker_email = $1 ORDER BY a.applied_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanApplications reads rows from the listing join. Listing columns are
// scanned through pointers because the join is nullable: a deleted listing
// leaves the application dangling with a nil Job.
func scanApplications(rows pgx.Rows) ([]domain.JobApplication, error) {
	var applications []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		var (
			jobID          *int64
			jobTitle       *string
			companyName    *string
			jobDescription *string
			startDate      *time.Time
			endDate        *time.Time
			jobType        *string
			email          *string
			userID         *int64
			createdAt      *time.Time
			updatedAt      *time.Time
		)

		if err := rows.Scan(
			&app.ID, &app.JobSeekerEmail, &app.EmployerEmail, &app.JobID, &app.AppliedAt,
			&jobID, &jobTitle, &companyName, &jobDescription,
			&startDate, &endDate, &jobType, &email, &userID,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		if jobID != nil {
			app.Job = &domain.JobListing{
				ID:             *jobID,
				JobTitle:       *jobTitle,
				CompanyName:    *companyName,
				JobDescription: *jobDescription,
				StartDate:      *startDate,
				EndDate:        *endDate,
				JobType:        *jobType,
				Email:          *email,
				UserID:         *userID,
				CreatedAt:      *createdAt,
				UpdatedAt:      *updatedAt,
			}
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
