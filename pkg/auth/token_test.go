package auth_test

import (
	"testing"
	"time"

	"job-portal-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	m := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("Should carry the account identity through issue and parse", func(t *testing.T) {
		token, err := m.Issue(42, "jane@example.com", "employer")
		assert.NoError(t, err)

		claims, err := m.Parse(token)
		assert.NoError(t, err)

		id, err := claims.UserID()
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, "employer", claims.Role)
	})

	t.Run("Should reject a token signed with a different secret", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		token, err := other.Issue(42, "jane@example.com", "employer")
		assert.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		short := auth.NewTokenManager("test-secret", -time.Minute)
		token, err := short.Issue(42, "jane@example.com", "employer")
		assert.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.Error(t, err)
	})
}
