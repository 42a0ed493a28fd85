package usecase_test

import (
	"context"
	"testing"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateListing(t *testing.T) {
	t.Run("Should reject an unknown job type", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		listing := &domain.JobListing{JobTitle: "Backend Engineer", JobType: "internship"}
		_, err := uc.CreateListing(context.Background(), listing)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job type must be")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should normalize the posting email", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobListing")).Return(nil).Run(func(args mock.Arguments) {
			l := args.Get(1).(*domain.JobListing)
			assert.Equal(t, "hr@acme.com", l.Email)
		})

		listing := &domain.JobListing{JobTitle: "Backend Engineer", JobType: domain.JobTypeFullTime, Email: " HR@Acme.com "}
		_, err := uc.CreateListing(context.Background(), listing)
		assert.NoError(t, err)
	})
}

func TestListActive(t *testing.T) {
	t.Run("Should keep only listings inside their date window", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		now := time.Now()
		listings := []domain.JobListing{
			{ID: 1, JobTitle: "Open", StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 5)},
			{ID: 2, JobTitle: "Ended", StartDate: now.AddDate(0, 0, -10), EndDate: now.AddDate(0, 0, -1)},
			{ID: 3, JobTitle: "Not yet", StartDate: now.AddDate(0, 0, 2), EndDate: now.AddDate(0, 0, 9)},
			{ID: 4, JobTitle: "Ends today", StartDate: now.AddDate(0, 0, -5), EndDate: now},
		}
		mockRepo.On("FetchAll", mock.Anything).Return(listings, nil)

		active, err := uc.ListActive(context.Background())
		assert.NoError(t, err)
		assert.Len(t, active, 1)
		assert.Equal(t, int64(1), active[0].ID)
	})
}

func TestUpdateListing(t *testing.T) {
	t.Run("Should reject an unknown job type without touching the store", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		badType := "internship"
		_, err := uc.UpdateListing(context.Background(), 1, &domain.JobListingUpdate{JobType: &badType})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdatePartial")
	})

	t.Run("Should pass only the supplied fields through", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		title := "Senior Backend Engineer"
		updated := &domain.JobListing{ID: 1, JobTitle: title}
		mockRepo.On("UpdatePartial", mock.Anything, int64(1), mock.AnythingOfType("*domain.JobListingUpdate")).Return(updated, nil).Run(func(args mock.Arguments) {
			upd := args.Get(2).(*domain.JobListingUpdate)
			assert.Equal(t, title, *upd.JobTitle)
			assert.Nil(t, upd.CompanyName)
			assert.Nil(t, upd.EndDate)
		})

		result, err := uc.UpdateListing(context.Background(), 1, &domain.JobListingUpdate{JobTitle: &title})
		assert.NoError(t, err)
		assert.Equal(t, title, result.JobTitle)
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		title := "whatever"
		mockRepo.On("UpdatePartial", mock.Anything, int64(99), mock.Anything).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateListing(context.Background(), 99, &domain.JobListingUpdate{JobTitle: &title})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job listing not found")
	})
}

func TestDeleteListing(t *testing.T) {
	t.Run("Should confirm a successful delete", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		msg, err := uc.DeleteListing(context.Background(), 1)
		assert.NoError(t, err)
		assert.Contains(t, msg, "deleted successfully")
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		mockRepo.On("Delete", mock.Anything, int64(99)).Return(domain.ErrNotFound)

		_, err := uc.DeleteListing(context.Background(), 99)
		assert.Error(t, err)
	})
}

func TestListPaged(t *testing.T) {
	t.Run("Should page with a ceiling on total pages", func(t *testing.T) {
		mockRepo := new(MockListingRepo)
		uc := usecase.NewJobListingUsecase(mockRepo)

		mockRepo.On("Fetch", mock.Anything, "", 10, 0).Return([]domain.JobListing{{ID: 1}}, int64(21), nil)

		result, err := uc.ListPaged(context.Background(), "", 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, 3, result.TotalPages)
	})
}

func TestJobSeekerProfile(t *testing.T) {
	t.Run("Should reject a profile without a name", func(t *testing.T) {
		mockRepo := new(MockJobSeekerRepo)
		uc := usecase.NewJobSeekerUsecase(mockRepo, validator.New())

		profile := &domain.JobSeekerProfile{Email: "seeker@example.com"}
		_, err := uc.CreateProfile(context.Background(), profile)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should return nil without error when no profile exists", func(t *testing.T) {
		mockRepo := new(MockJobSeekerRepo)
		uc := usecase.NewJobSeekerUsecase(mockRepo, validator.New())

		mockRepo.On("GetByEmail", mock.Anything, "seeker@example.com").Return(nil, nil)

		profile, err := uc.GetProfileByEmail(context.Background(), "Seeker@Example.com")
		assert.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("Should fall back to create when the replace target is missing", func(t *testing.T) {
		mockRepo := new(MockJobSeekerRepo)
		uc := usecase.NewJobSeekerUsecase(mockRepo, validator.New())

		profile := &domain.JobSeekerProfile{ID: 7, Name: "Seeker", Email: "seeker@example.com"}
		mockRepo.On("Replace", mock.Anything, profile).Return(domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, profile).Return(nil)

		result, err := uc.UpdateProfile(context.Background(), profile)
		assert.NoError(t, err)
		assert.Equal(t, profile, result)
		mockRepo.AssertCalled(t, "Create", mock.Anything, profile)
	})

	t.Run("Should replace in place when the id resolves", func(t *testing.T) {
		mockRepo := new(MockJobSeekerRepo)
		uc := usecase.NewJobSeekerUsecase(mockRepo, validator.New())

		profile := &domain.JobSeekerProfile{ID: 7, Name: "Seeker", Email: "seeker@example.com"}
		mockRepo.On("Replace", mock.Anything, profile).Return(nil)

		_, err := uc.UpdateProfile(context.Background(), profile)
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

type MockEmployerProfileRepo struct {
	mock.Mock
}

func (m *MockEmployerProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerProfileRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockEmployerProfileRepo) UpdatePartial(ctx context.Context, id int64, upd *domain.EmployerProfileUpdate) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func TestEmployerProfile(t *testing.T) {
	t.Run("Should report not found for an unknown email", func(t *testing.T) {
		mockRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewEmployerProfileUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, err := uc.GetProfileByEmail(context.Background(), "ghost@example.com")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Employer profile not found")
	})

	t.Run("Should merge only the supplied fields on update", func(t *testing.T) {
		mockRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewEmployerProfileUsecase(mockRepo)

		location := "Berlin"
		merged := &domain.EmployerProfile{ID: 1, CompanyName: "Acme", Location: location}
		mockRepo.On("UpdatePartial", mock.Anything, int64(1), mock.AnythingOfType("*domain.EmployerProfileUpdate")).Return(merged, nil).Run(func(args mock.Arguments) {
			upd := args.Get(2).(*domain.EmployerProfileUpdate)
			assert.Equal(t, location, *upd.Location)
			assert.Nil(t, upd.CompanyName)
		})

		result, err := uc.UpdateProfile(context.Background(), 1, &domain.EmployerProfileUpdate{Location: &location})
		assert.NoError(t, err)
		assert.Equal(t, "Acme", result.CompanyName)
	})
}
