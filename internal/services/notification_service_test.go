package services

import (
	"testing"

	"workhive_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildStatusMessage(t *testing.T) {
	msg := BuildStatusMessage("Backend Engineer", models.ApplicationStatusPending, models.ApplicationStatusHired)
	assert.Equal(t, `Your application for "Backend Engineer" moved from Pending to Hired`, msg)
}

func TestBuildStatusMessageWithPlaceholderTitle(t *testing.T) {
	msg := BuildStatusMessage(UnknownJobTitle, models.ApplicationStatusReviewed, models.ApplicationStatusRejected)
	assert.Equal(t, `Your application for "Unknown Job" moved from Reviewed to Rejected`, msg)
}
