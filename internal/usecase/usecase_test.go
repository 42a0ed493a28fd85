package usecase_test

import (
	"context"
	"testing"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByNameAndEmail(ctx context.Context, fullName, email string) (*domain.User, error) {
	args := m.Called(ctx, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	return m.Called(ctx, id, blocked).Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type MockJobSeekerRepo struct {
	mock.Mock
}

func (m *MockJobSeekerRepo) GetByEmail(ctx context.Context, email string) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockJobSeekerRepo) Create(ctx context.Context, profile *domain.JobSeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockJobSeekerRepo) Replace(ctx context.Context, profile *domain.JobSeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.JobListing) error {
	return m.Called(ctx, listing).Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id int64) (*domain.JobListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}
func (m *MockListingRepo) FetchAll(ctx context.Context) ([]domain.JobListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobListing), args.Error(1)
}
func (m *MockListingRepo) FetchByEmail(ctx context.Context, email string) ([]domain.JobListing, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobListing), args.Error(1)
}
func (m *MockListingRepo) Fetch(ctx context.Context, email string, limit, offset int) ([]domain.JobListing, int64, error) {
	args := m.Called(ctx, email, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobListing), args.Get(1).(int64), args.Error(2)
}
func (m *MockListingRepo) UpdatePartial(ctx context.Context, id int64, upd *domain.JobListingUpdate) (*domain.JobListing, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}
func (m *MockListingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobSeekerEmail string, jobID int64) (bool, error) {
	args := m.Called(ctx, jobSeekerEmail, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchAll(ctx context.Context) ([]domain.JobApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchByEmployerEmail(ctx context.Context, email string) ([]domain.JobApplication, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) FetchByJobSeekerEmail(ctx context.Context, email string) ([]domain.JobApplication, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestSignup(t *testing.T) {
	t.Run("Should reject unknown roles", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		_, err := uc.Signup(context.Background(), "Jane Doe", "jane@example.com", "secret", "superuser")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Role must be")
	})

	t.Run("Should conflict when the email is taken", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		existing := &domain.User{ID: 1, Email: "jane@example.com"}
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

		_, err := uc.Signup(context.Background(), "Jane Doe", "jane@example.com", "secret", domain.RoleJobSeeker)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should normalize the email and hash the password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "jane@example.com", u.Email)
			assert.NotEqual(t, "secret", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
		})

		user, err := uc.Signup(context.Background(), "Jane Doe", "  Jane@Example.COM ", "secret", domain.RoleEmployer)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEmployer, user.Role)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Should report not found for an unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No user found")
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		user := &domain.User{ID: 1, Email: "jane@example.com", PasswordHash: hashOf(t, "right")}
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

		_, err := uc.Login(context.Background(), "jane@example.com", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect password")
	})

	t.Run("Should reject a blocked account even with valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		user := &domain.User{ID: 1, Email: "jane@example.com", PasswordHash: hashOf(t, "secret"), Blocked: true}
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

		_, err := uc.Login(context.Background(), "jane@example.com", "secret")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "blocked")
	})

	t.Run("Should issue a token on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		user := &domain.User{ID: 42, Email: "jane@example.com", Role: domain.RoleJobSeeker, PasswordHash: hashOf(t, "secret")}
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

		result, err := uc.Login(context.Background(), "Jane@Example.com", "secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)

		claims, err := tokens.Parse(result.Token)
		assert.NoError(t, err)
		id, err := claims.UserID()
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, "jane@example.com", claims.Email)
	})
}

func TestVerifyUser(t *testing.T) {
	t.Run("Should soft-fail when name and email do not match together", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByNameAndEmail", mock.Anything, "Jane Doe", "jane@example.com").Return(nil, domain.ErrNotFound)

		result, err := uc.VerifyUser(context.Background(), "Jane Doe", "jane@example.com")
		assert.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("Should succeed on an exact match", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		user := &domain.User{ID: 1, FullName: "Jane Doe", Email: "jane@example.com"}
		mockRepo.On("GetByNameAndEmail", mock.Anything, "Jane Doe", "jane@example.com").Return(user, nil)

		result, err := uc.VerifyUser(context.Background(), "Jane Doe", "jane@example.com")
		assert.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("Should soft-fail for an unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		result, err := uc.ResetPassword(context.Background(), "ghost@example.com", "newpass")
		assert.NoError(t, err)
		assert.False(t, result.Success)
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("Should store a fresh hash, never the plaintext", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		user := &domain.User{ID: 7, Email: "jane@example.com"}
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
		mockRepo.On("UpdatePassword", mock.Anything, int64(7), mock.AnythingOfType("string")).Return(nil).Run(func(args mock.Arguments) {
			hash := args.Get(2).(string)
			assert.NotEqual(t, "newpass", hash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
		})

		result, err := uc.ResetPassword(context.Background(), "jane@example.com", "newpass")
		assert.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestAdminPrivilege(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAdminUsecase(mockRepo)

	t.Run("Should fail if role is not admin", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleEmployer)
		_, err := uc.ListUsers(ctx, 1, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})

	t.Run("Should fail safe if role is nil", func(t *testing.T) {
		_, err := uc.ToggleBlock(context.Background(), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})
}

func TestAdminListUsers(t *testing.T) {
	t.Run("Should compute total pages from the full count", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		mockRepo.On("List", mock.Anything, 10, 10).Return([]domain.User{{ID: 11}}, int64(25), nil)

		result, err := uc.ListUsers(ctx, 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(25), result.Total)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, 2, result.Page)
	})

	t.Run("Should clamp page and limit to sane values", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		mockRepo.On("List", mock.Anything, 10, 0).Return([]domain.User{}, int64(0), nil)

		result, err := uc.ListUsers(ctx, -3, 5000)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.PageSize)
	})
}

func TestAdminToggleBlock(t *testing.T) {
	t.Run("Should flip the blocked flag", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		mockRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Blocked: false}, nil)
		mockRepo.On("SetBlocked", mock.Anything, int64(5), true).Return(nil)

		user, err := uc.ToggleBlock(ctx, 5)
		assert.NoError(t, err)
		assert.True(t, user.Blocked)
	})

	t.Run("Should unblock an already blocked account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		mockRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Blocked: true}, nil)
		mockRepo.On("SetBlocked", mock.Anything, int64(5), false).Return(nil)

		user, err := uc.ToggleBlock(ctx, 5)
		assert.NoError(t, err)
		assert.False(t, user.Blocked)
	})

	t.Run("Should report not found for an unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.ToggleBlock(ctx, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})
}
