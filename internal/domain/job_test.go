package domain_test

import (
	"testing"
	"time"

	"job-portal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestListingActiveWindow(t *testing.T) {
	listing := &domain.JobListing{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-10"),
	}

	t.Run("Should be active on the start date", func(t *testing.T) {
		assert.True(t, listing.ActiveAt(date("2024-01-01")))
	})

	t.Run("Should be active inside the window", func(t *testing.T) {
		assert.True(t, listing.ActiveAt(date("2024-01-05")))
	})

	t.Run("Should not be active on the end date", func(t *testing.T) {
		assert.False(t, listing.ActiveAt(date("2024-01-10")))
	})

	t.Run("Should not be active before the start date", func(t *testing.T) {
		assert.False(t, listing.ActiveAt(date("2023-12-31")))
	})

	t.Run("Should ignore the time of day", func(t *testing.T) {
		lateEvening := date("2024-01-09").Add(23 * time.Hour)
		assert.True(t, listing.ActiveAt(lateEvening))
	})
}

func TestListingStatusLabel(t *testing.T) {
	listing := &domain.JobListing{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-10"),
	}

	t.Run("Should be expired only after the end date has passed", func(t *testing.T) {
		assert.Equal(t, domain.ListingStatusExpired, listing.StatusAt(date("2024-01-11")))
		assert.NotEqual(t, domain.ListingStatusExpired, listing.StatusAt(date("2024-01-10")))
	})

	t.Run("Should be last day when the end date equals tomorrow", func(t *testing.T) {
		assert.Equal(t, domain.ListingStatusLastDay, listing.StatusAt(date("2024-01-09")))
	})

	t.Run("Should be active otherwise, even on the end date itself", func(t *testing.T) {
		assert.Equal(t, domain.ListingStatusActive, listing.StatusAt(date("2024-01-05")))
		assert.Equal(t, domain.ListingStatusActive, listing.StatusAt(date("2024-01-10")))
	})
}
