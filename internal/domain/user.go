package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Account roles. Admin is a real stored role; there is no hardcoded
// credential bypass anywhere in the stack.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Blocked      bool      `json:"blocked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginResult is returned by a successful login. The account view never
// carries the password hash.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

// StatusResult is the soft success/failure shape used by verify-user and
// reset-password.
type StatusResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByNameAndEmail(ctx context.Context, fullName, email string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
}

type AuthUsecase interface {
	Signup(ctx context.Context, fullName, email, password, role string) (*User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyUser(ctx context.Context, fullName, email string) (*StatusResult, error)
	ResetPassword(ctx context.Context, email, newPassword string) (*StatusResult, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type AdminUsecase interface {
	ListUsers(ctx context.Context, page, limit int) (*PaginatedResult[User], error)
	ToggleBlock(ctx context.Context, userID int64) (*User, error)
}
