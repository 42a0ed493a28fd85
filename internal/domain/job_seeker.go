package domain

import "context"

// ExperienceEntry is one position in a job seeker's work history.
type ExperienceEntry struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
}

// EducationEntry is one entry in a job seeker's education history.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// JobSeekerProfile is the resume-like profile, keyed by account email.
// At most one profile exists per email.
type JobSeekerProfile struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"required,email"`
	Mobile      string            `json:"mobile"`
	Gender      string            `json:"gender"`
	Address     string            `json:"address"`
	Nationality string            `json:"nationality"`
	Languages   []string          `json:"languages"`
	Experience  []ExperienceEntry `json:"experience"`
	Education   []EducationEntry  `json:"education"`
}

type JobSeekerRepository interface {
	// GetByEmail returns (nil, nil) when no profile exists for the email.
	GetByEmail(ctx context.Context, email string) (*JobSeekerProfile, error)
	Create(ctx context.Context, profile *JobSeekerProfile) error
	// Replace overwrites every field of the profile identified by profile.ID,
	// including the experience and education sequences. Returns ErrNotFound
	// when the id does not resolve.
	Replace(ctx context.Context, profile *JobSeekerProfile) error
}

type JobSeekerUsecase interface {
	GetProfileByEmail(ctx context.Context, email string) (*JobSeekerProfile, error)
	CreateProfile(ctx context.Context, profile *JobSeekerProfile) (*JobSeekerProfile, error)
	// UpdateProfile fully replaces the stored profile when profile.ID
	// resolves, and creates a new one otherwise.
	UpdateProfile(ctx context.Context, profile *JobSeekerProfile) (*JobSeekerProfile, error)
}
