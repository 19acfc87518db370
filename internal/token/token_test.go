package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", 5*time.Hour)
	userID := uuid.New()

	signed, expiresAt, err := svc.Generate(userID, "admin", true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", -1*time.Second)

	signed, _, err := svc.Generate(uuid.New(), "admin", true)
	require.NoError(t, err)

	_, err = svc.Parse(signed)
	require.Error(t, err, "expected error for expired token")
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, _, err := NewService("right-secret", time.Hour).Generate(uuid.New(), "admin", true)
	require.NoError(t, err)

	_, err = NewService("wrong-secret", time.Hour).Parse(signed)
	require.Error(t, err, "expected error for invalid signature")
}

func TestParse_MalformedToken(t *testing.T) {
	t.Parallel()

	_, err := NewService("k", time.Hour).Parse("not.a.jwt")
	require.Error(t, err)
}

func TestParse_NonAdminClaimPreserved(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", time.Hour)

	signed, _, err := svc.Generate(uuid.New(), "viewer", false)
	require.NoError(t, err)

	claims, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}
