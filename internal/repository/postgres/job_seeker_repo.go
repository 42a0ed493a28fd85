package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobSeekerRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerRepository(db *pgxpool.Pool) domain.JobSeekerRepository {
	return &jobSeekerRepo{db: db}
}

func (r *jobSeekerRepo) GetByEmail(ctx context.Context, email string) (*domain.JobSeekerProfile, error) {
	query := `
		SELECT id, name, email,
			COALESCE(mobile, ''), COALESCE(gender, ''), COALESCE(address, ''),
			COALESCE(nationality, ''), languages, experience, education
		FROM job_seeker_profiles WHERE email = $1`

	var p domain.JobSeekerProfile
	var languages []string
	var experienceJSON, educationJSON []byte

	err := r.db.QueryRow(ctx, query, email).Scan(
		&p.ID, &p.Name, &p.Email,
		&p.Mobile, &p.Gender, &p.Address, &p.Nationality,
		pq.Array(&languages), &experienceJSON, &educationJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Languages = languages

	if err := unmarshalSeq(experienceJSON, &p.Experience); err != nil {
		return nil, fmt.Errorf("decoding experience: %w", err)
	}
	if err := unmarshalSeq(educationJSON, &p.Education); err != nil {
		return nil, fmt.Errorf("decoding education: %w", err)
	}
	return &p, nil
}

func (r *jobSeekerRepo) Create(ctx context.Context, profile *domain.JobSeekerProfile) error {
	experienceJSON, educationJSON, err := marshalSequences(profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO job_seeker_profiles
			(name, email, mobile, gender, address, nationality, languages, experience, education)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err = r.db.QueryRow(ctx, query,
		profile.Name, profile.Email, profile.Mobile, profile.Gender,
		profile.Address, profile.Nationality, pq.Array(profile.Languages),
		experienceJSON, educationJSON,
	).Scan(&profile.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A profile already exists for this email")
		}
		return err
	}
	return nil
}

// Replace overwrites the whole row, including wholesale replacement of the
// experience and education sequences.
func (r *jobSeekerRepo) Replace(ctx context.Context, profile *domain.JobSeekerProfile) error {
	experienceJSON, educationJSON, err := marshalSequences(profile)
	if err != nil {
		return err
	}

	query := `
		UPDATE job_seeker_profiles SET
			name = $2, email = $3, mobile = $4, gender = $5, address = $6,
			nationality = $7, languages = $8, experience = $9, education = $10
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Name, profile.Email, profile.Mobile, profile.Gender,
		profile.Address, profile.Nationality, pq.Array(profile.Languages),
		experienceJSON, educationJSON,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalSequences(profile *domain.JobSeekerProfile) ([]byte, []byte, error) {
	// Store empty sequences as [] so a replace with an empty slice clears
	// the stored entries.
	if profile.Experience == nil {
		profile.Experience = []domain.ExperienceEntry{}
	}
	if profile.Education == nil {
		profile.Education = []domain.EducationEntry{}
	}

	experienceJSON, err := json.Marshal(profile.Experience)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding experience: %w", err)
	}
	educationJSON, err := json.Marshal(profile.Education)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding education: %w", err)
	}
	return experienceJSON, educationJSON, nil
}

func unmarshalSeq(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
