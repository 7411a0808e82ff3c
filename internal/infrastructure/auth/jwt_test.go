package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/supporthub/internal/shared/authorization"
	"github.com/supporthub/supporthub/internal/shared/config"
)

func newTestService(secret, issuer string) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, Issuer: issuer, AccessExpMinutes: 60})
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestService("s3cret", "supporthub")

	token, expiresAt, err := svc.Issue("user-1", "Agent Alex", authorization.RoleSupervisor)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Agent Alex", claims.Name)
	assert.Equal(t, authorization.RoleSupervisor, claims.Role)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := newTestService("s3cret", "supporthub")

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := newTestService("other", "supporthub").Issue("user-1", "A", authorization.RoleAgent)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, _, err := newTestService("s3cret", "someone-else").Issue("user-1", "A", authorization.RoleAgent)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		past := newTestService("s3cret", "supporthub")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := past.Issue("user-1", "A", authorization.RoleAgent)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "supporthub"},
		}).SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.Error(t, err)
	})
}
