package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"workhive_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// RegisterAndLogin creates a user through the API and returns a bearer
// token plus the persisted user row.
func RegisterAndLogin(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	registerBody := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "register should succeed: %s", body)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: %s", body)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)

	return loginResponse.AccessToken, &user
}

// NewEmployer registers an employer with a unique email.
func NewEmployer(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	return RegisterAndLogin(t, ts, "Test Employer", email, "password123", models.UserRoleEmployer)
}

// NewJobseeker registers a jobseeker with a unique email.
func NewJobseeker(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("jobseeker_%d@test.com", time.Now().UnixNano())
	return RegisterAndLogin(t, ts, "Test Jobseeker", email, "password123", models.UserRoleJobseeker)
}

// CreateJob posts a job through the API and returns its id.
func CreateJob(t *testing.T, ts *TestServer, employerToken, title string) string {
	t.Helper()

	jobBody := map[string]interface{}{
		"title":           title,
		"description":     "We are hiring.",
		"location":        "Almaty",
		"salary":          500000,
		"salary_period":   "month",
		"employment_type": "full-time",
		"requirements":    []string{"Go", "PostgreSQL"},
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employerToken, jobBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation should succeed: %s", body)

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	require.NotEmpty(t, job.ID)
	return job.ID
}

// Apply submits a JSON application and returns the application id.
func Apply(t *testing.T, ts *TestServer, jobseekerToken, jobID string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/jobs/"+jobID, jobseekerToken,
		map[string]interface{}{"cover_letter": "I am a great fit."})
	require.Equal(t, http.StatusCreated, res.StatusCode, "application should succeed: %s", body)

	var application struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &application))
	require.NotEmpty(t, application.ID)
	return application.ID
}
