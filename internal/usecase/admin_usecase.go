package usecase

import (
	"context"
	"errors"
	"math"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type adminUsecase struct {
	userRepo domain.UserRepository
}

func NewAdminUsecase(userRepo domain.UserRepository) domain.AdminUsecase {
	return &adminUsecase{userRepo: userRepo}
}

// ListUsers returns paginated accounts for administrative review.
func (u *adminUsecase) ListUsers(ctx context.Context, page, limit int) (*domain.PaginatedResult[domain.User], error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit
	users, total, err := u.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &domain.PaginatedResult[domain.User]{
		Data:       users,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages,
	}, nil
}

// ToggleBlock flips the blocked flag. Calling it twice restores the
// original state.
func (u *adminUsecase) ToggleBlock(ctx context.Context, userID int64) (*domain.User, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.userRepo.SetBlocked(ctx, userID, !user.Blocked); err != nil {
		return nil, apperror.Internal(err)
	}

	user.Blocked = !user.Blocked
	return user, nil
}

// requireAdmin enforces the stored admin role server-side for every
// sensitive operation.
func (u *adminUsecase) requireAdmin(ctx context.Context) error {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can perform this action")
	}
	return nil
}
