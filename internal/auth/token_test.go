package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-studio/site-api/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	u := &models.User{ID: 42, Email: "admin@mail.com", Role: models.RoleAdmin}

	token, err := issuer.Mint(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID())
	assert.Equal(t, "admin@mail.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer, err := NewTokenIssuer("secret-one", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Mint(&models.User{ID: 1, Email: "a@b.com", Role: models.RoleUser})
	require.NoError(t, err)

	other, err := NewTokenIssuer("secret-two", time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	issuer.ttl = -time.Minute

	token, err := issuer.Mint(&models.User{ID: 1, Email: "a@b.com", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Verify("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
}
