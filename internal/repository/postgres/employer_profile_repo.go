package postgres

import (
	"context"
	"errors"

	"job-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerProfileRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerProfileRepo{db: db}
}

func (r *employerProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, employer_name, company_name, about_company, company_start_date, location, employer_email
		FROM employer_profiles WHERE employer_email = $1`

	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&p.ID, &p.EmployerName, &p.CompanyName, &p.AboutCompany,
		&p.CompanyStartDate, &p.Location, &p.EmployerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerProfileRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles
			(employer_name, company_name, about_company, company_start_date, location, employer_email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		profile.EmployerName, profile.CompanyName, profile.AboutCompany,
		profile.CompanyStartDate, profile.Location, profile.EmployerEmail,
	).Scan(&profile.ID)
}

// UpdatePartial only overwrites the supplied fields; nil fields keep their
// stored values.
func (r *employerProfileRepo) UpdatePartial(ctx context.Context, id int64, upd *domain.EmployerProfileUpdate) (*domain.EmployerProfile, error) {
	query := `
		UPDATE employer_profiles SET
			employer_name      = COALESCE($2, employer_name),
			company_name       = COALESCE($3, company_name),
			about_company      = COALESCE($4, about_company),
			company_start_date = COALESCE($5, company_start_date),
			location           = COALESCE($6, location)
		WHERE id = $1
		RETURNING id, employer_name, company_name, about_company, company_start_date, location, employer_email`

	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, id,
		upd.EmployerName, upd.CompanyName, upd.AboutCompany,
		upd.CompanyStartDate, upd.Location,
	).Scan(
		&p.ID, &p.EmployerName, &p.CompanyName, &p.AboutCompany,
		&p.CompanyStartDate, &p.Location, &p.EmployerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
