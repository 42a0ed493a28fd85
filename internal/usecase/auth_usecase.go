package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

// normalizeEmail applies the one canonical form for email keys across the
// whole store boundary: trimmed and lower-cased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Signup registers a new job seeker or employer account. The plaintext
// password never reaches the repository.
func (u *authUsecase) Signup(ctx context.Context, fullName, email, password, role string) (*domain.User, error) {
	if role != domain.RoleJobSeeker && role != domain.RoleEmployer {
		return nil, apperror.BadRequest("Role must be job_seeker or employer")
	}

	email = normalizeEmail(email)

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists with this email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Blocked:      false,
	}

	// The unique index on users.email closes the check-then-insert race;
	// the repository maps it to the same Conflict error.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a session token. Blocked accounts are
// rejected here, not left for the caller to check.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No user found with this email")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Incorrect password")
	}

	if user.Blocked {
		return nil, apperror.Forbidden("Account is blocked")
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{
		Message: "Login successful",
		Token:   token,
		User:    user,
	}, nil
}

// VerifyUser is step one of a password reset: it succeeds only on an exact
// match of both the full name and the email.
func (u *authUsecase) VerifyUser(ctx context.Context, fullName, email string) (*domain.StatusResult, error) {
	_, err := u.userRepo.GetByNameAndEmail(ctx, fullName, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.StatusResult{
				Success: false,
				Message: "No user found with this name and email combination",
			}, nil
		}
		return nil, apperror.Internal(err)
	}

	return &domain.StatusResult{Success: true, Message: "User verified successfully"}, nil
}

// ResetPassword rehashes and overwrites the password. A missing account is a
// soft failure, not an error.
func (u *authUsecase) ResetPassword(ctx context.Context, email, newPassword string) (*domain.StatusResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.StatusResult{
				Success: false,
				Message: "No user found with this email",
			}, nil
		}
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.StatusResult{Success: true, Message: "Password reset successfully."}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
