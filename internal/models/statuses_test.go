package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidApplicationStatus(t *testing.T) {
	valid := []ApplicationStatus{
		ApplicationStatusPending,
		ApplicationStatusReviewed,
		ApplicationStatusInterviewing,
		ApplicationStatusHired,
		ApplicationStatusRejected,
	}
	for _, s := range valid {
		assert.True(t, IsValidApplicationStatus(s), "status %q", s)
	}

	invalid := []ApplicationStatus{"", "pending", "PENDING", "Archived", "Accepted"}
	for _, s := range invalid {
		assert.False(t, IsValidApplicationStatus(s), "status %q", s)
	}
}

func TestIsValidUserRole(t *testing.T) {
	assert.True(t, IsValidUserRole(UserRoleJobseeker))
	assert.True(t, IsValidUserRole(UserRoleEmployer))
	assert.False(t, IsValidUserRole("admin"))
	assert.False(t, IsValidUserRole(""))
}

func TestHasCompleteProfile(t *testing.T) {
	user := User{
		Email: "u@example.com",
		Name:  "U",
	}
	assert.False(t, user.HasCompleteProfile())

	user.Phone = "+77001234567"
	user.Location = "Almaty"
	assert.True(t, user.HasCompleteProfile())
}
