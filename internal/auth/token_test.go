package auth

import (
	"testing"
	"time"

	"workhive_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "11111111-2222-3333-4444-555555555555"},
		Email:     "dev@example.com",
		Role:      models.UserRoleJobseeker,
		Name:      "Dev Example",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := testUser()

	token, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.Name, claims.Name)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	token, err := svc.Generate(testUser())
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate(testUser())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.Parse("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenInvalidRoleRejected(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := testUser()
	user.Role = "superadmin"

	token, err := svc.Generate(user)
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
