package postgres

import (
	"context"
	"errors"
	"time"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingColumns = `id, job_title, company_name, job_description, start_date, end_date, job_type, email, user_id, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobListingRepository(db *pgxpool.Pool) domain.JobListingRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, listing *domain.JobListing) error {
	query := `INSERT INTO job_listings (job_title, company_name, job_description, start_date, end_date, job_type, email, user_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		listing.JobTitle, listing.CompanyName, listing.JobDescription,
		listing.StartDate, listing.EndDate, listing.JobType,
		listing.Email, listing.UserID, listing.CreatedAt, listing.UpdatedAt,
	).Scan(&listing.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobListing, error) {
	query := `SELECT ` + listingColumns + ` FROM job_listings WHERE id = $1`
	var listing domain.JobListing
	err := r.db.QueryRow(ctx, query, id).Scan(
		&listing.ID, &listing.JobTitle, &listing.CompanyName, &listing.JobDescription,
		&listing.StartDate, &listing.EndDate, &listing.JobType, &listing.Email,
		&listing.UserID, &listing.CreatedAt, &listing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// FetchAll returns every listing regardless of its active window.
func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.JobListing, error) {
	query := `SELECT ` + listingColumns + ` FROM job_listings ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *jobRepo) FetchByEmail(ctx context.Context, email string) ([]domain.JobListing, error) {
	query := `SELECT ` + listingColumns + ` FROM job_listings WHERE email = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *jobRepo) Fetch(ctx context.Context, email string, limit, offset int) ([]domain.JobListing, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_listings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	var (
		rows pgx.Rows
		err  error
	)
	if email != "" {
		query := `SELECT ` + listingColumns + ` FROM job_listings WHERE email = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		rows, err = r.db.Query(ctx, query, email, limit, offset)
	} else {
		query := `SELECT ` + listingColumns + ` FROM job_listings ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		rows, err = r.db.Query(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	listings, err := scanListings(rows)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// UpdatePartial applies only the supplied fields; nil fields keep their
// stored values. Repeating the same payload yields the same stored state.
func (r *jobRepo) UpdatePartial(ctx context.Context, id int64, upd *domain.JobListingUpdate) (*domain.JobListing, error) {
	query := `
		UPDATE job_listings SET
			job_title       = COALESCE($2, job_title),
			company_name    = COALESCE($3, company_name),
			job_description = COALESCE($4, job_description),
			start_date      = COALESCE($5, start_date),
			end_date        = COALESCE($6, end_date),
			job_type        = COALESCE($7, job_type),
			email           = COALESCE($8, email),
			updated_at      = $9
		WHERE id = $1
		RETURNING ` + listingColumns

	var listing domain.JobListing
	err := r.db.QueryRow(ctx, query, id,
		upd.JobTitle, upd.CompanyName, upd.JobDescription,
		upd.StartDate, upd.EndDate, upd.JobType, upd.Email,
		time.Now(),
	).Scan(
		&listing.ID, &listing.JobTitle, &listing.CompanyName, &listing.JobDescription,
		&listing.StartDate, &listing.EndDate, &listing.JobType, &listing.Email,
		&listing.UserID, &listing.CreatedAt, &listing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// Delete removes the listing only. Applications referencing it are left in
// place and resolve to a null job at read time.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanListings(rows pgx.Rows) ([]domain.JobListing, error) {
	var listings []domain.JobListing
	for rows.Next() {
		var listing domain.JobListing
		if err := rows.Scan(
			&listing.ID, &listing.JobTitle, &listing.CompanyName, &listing.JobDescription,
			&listing.StartDate, &listing.EndDate, &listing.JobType, &listing.Email,
			&listing.UserID, &listing.CreatedAt, &listing.UpdatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}
