package domain

import "context"

// EmployerProfile holds company data for an employer account, keyed by the
// account email. Uniqueness per email is intended but not constrained in the
// schema.
type EmployerProfile struct {
	ID               int64  `json:"id"`
	EmployerName     string `json:"employer_name"`
	CompanyName      string `json:"company_name"`
	AboutCompany     string `json:"about_company"`
	CompanyStartDate string `json:"company_start_date"`
	Location         string `json:"location"`
	EmployerEmail    string `json:"employer_email"`
}

// EmployerProfileUpdate carries a partial update: nil fields are left
// untouched. This is deliberately asymmetric with the job-seeker profile's
// full-replace semantics.
type EmployerProfileUpdate struct {
	EmployerName     *string `json:"employer_name"`
	CompanyName      *string `json:"company_name"`
	AboutCompany     *string `json:"about_company"`
	CompanyStartDate *string `json:"company_start_date"`
	Location         *string `json:"location"`
}

type EmployerProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*EmployerProfile, error)
	Create(ctx context.Context, profile *EmployerProfile) error
	UpdatePartial(ctx context.Context, id int64, upd *EmployerProfileUpdate) (*EmployerProfile, error)
}

type EmployerProfileUsecase interface {
	GetProfileByEmail(ctx context.Context, email string) (*EmployerProfile, error)
	CreateProfile(ctx context.Context, profile *EmployerProfile) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, id int64, upd *EmployerProfileUpdate) (*EmployerProfile, error)
}
