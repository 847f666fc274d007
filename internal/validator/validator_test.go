package validator

import (
	"testing"

	"workhive_backend/internal/models"
	"workhive_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidation(t *testing.T) {
	v := New()

	valid := dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "longenough",
		Name:     "Test User",
		Role:     "jobseeker",
	}
	assert.NoError(t, v.Validate(&valid))

	invalid := dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "longenough",
		Name:     "Test User",
		Role:     "admin",
	}
	err := v.Validate(&invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "role")
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	v := New()

	err := v.Validate(&dto.LoginRequest{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestApplicationStatusRule(t *testing.T) {
	v := New()

	for _, status := range []string{"Pending", "Reviewed", "Interviewing", "Hired", "Rejected"} {
		req := dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatus(status)}
		assert.NoError(t, v.Validate(&req), "status %q should validate", status)
	}

	err := v.Validate(&dto.UpdateApplicationStatusRequest{Status: "Archived"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid application status", vErr.Errors["status"])
}
