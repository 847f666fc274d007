package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"workhive_backend/internal/models"
	"workhive_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToJob(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.NewEmployer(t, ts)
	jobseekerToken, jobseeker := helpers.NewJobseeker(t, ts)
	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/jobs/"+jobID, jobseekerToken,
		map[string]interface{}{"cover_letter": "I am a great fit."})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var application struct {
		ID          string `json:"id"`
		JobID       string `json:"job_id"`
		ApplicantID string `json:"applicant_id"`
		EmployerID  string `json:"employer_id"`
		Status      string `json:"status"`
		JobTitle    string `json:"job_title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &application))
	assert.Equal(t, jobID, application.JobID)
	assert.Equal(t, jobseeker.ID, application.ApplicantID)
	assert.Equal(t, employer.ID, application.EmployerID)
	assert.Equal(t, "Pending", application.Status)
	assert.Equal(t, "Backend Engineer", application.JobTitle)
}

func TestApplyWithChunkedBody(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, jobseeker := helpers.NewJobseeker(t, ts)
	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")

	// Wrapping the reader hides its length from the client, so the
	// request goes out with Transfer-Encoding: chunked and no
	// Content-Length. The cover letter must still be picked up.
	payload := io.MultiReader(strings.NewReader(`{"cover_letter":"Streamed cover letter."}`))
	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/applications/jobs/"+jobID, payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+jobseekerToken)

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))

	var application models.Application
	err = ts.DB.Where("job_id = ? AND applicant_id = ?", jobID, jobseeker.ID).First(&application).Error
	require.NoError(t, err)
	assert.Equal(t, "Streamed cover letter.", application.CoverLetter)
}

func TestDuplicateApplicationRejected(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, jobseeker := helpers.NewJobseeker(t, ts)
	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")

	helpers.Apply(t, ts, jobseekerToken, jobID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/jobs/"+jobID, jobseekerToken,
		map[string]interface{}{"cover_letter": "Trying again."})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, jobseeker.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApplyEdgeCases(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)
	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")

	// Missing job.
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/jobs/00000000-0000-0000-0000-000000000000",
		jobseekerToken, map[string]interface{}{"cover_letter": "hi"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Inactive job.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+jobID, employerToken,
		map[string]interface{}{"active": false})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/jobs/"+jobID, jobseekerToken,
		map[string]interface{}{"cover_letter": "hi"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	// Employers cannot apply at all.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/applications/jobs/"+jobID, employerToken,
		map[string]interface{}{"cover_letter": "hi"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApplyWithResume(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)
	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")

	res, body := ts.SendMultipart(t, "/api/v1/applications/jobs/"+jobID, jobseekerToken,
		map[string]string{"cover_letter": "See attached."},
		"resume", "cv.pdf", []byte("%PDF-1.4 fake resume"))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var application struct {
		ID         string `json:"id"`
		ResumePath string `json:"resume_path"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &application))
	assert.NotEmpty(t, application.ResumePath)
	assert.Contains(t, application.ResumePath, "resumes/")
}

func TestApplicationListings(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	otherEmployerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)

	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")
	helpers.Apply(t, ts, jobseekerToken, jobID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/applications/my", jobseekerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Applications []struct {
			JobID    string `json:"job_id"`
			JobTitle string `json:"job_title"`
		} `json:"applications"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Backend Engineer", list.Applications[0].JobTitle)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/employer", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, 1, list.Total)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/jobs/"+jobID+"/list", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, 1, list.Total)

	// Another employer cannot list applications for a job they do not own.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/jobs/"+jobID+"/list", otherEmployerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApplicationReadsDegradeAfterJobRowRemoved(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)

	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")
	helpers.Apply(t, ts, jobseekerToken, jobID)

	// Simulate legacy data where the job row vanished without cleanup.
	require.NoError(t, ts.DB.Exec("DELETE FROM jobs WHERE id = ?", jobID).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/applications/my", jobseekerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Applications []struct {
			JobTitle string `json:"job_title"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list.Applications, 1)
	assert.Equal(t, "Unknown Job", list.Applications[0].JobTitle)
}

func TestUpdateApplicationStatus(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	otherEmployerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)

	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")
	applicationID := helpers.Apply(t, ts, jobseekerToken, jobID)

	// Only the job's employer may change the status.
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/applications/"+applicationID+"/status",
		otherEmployerToken, map[string]interface{}{"status": "Reviewed"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/applications/"+applicationID+"/status",
		employerToken, map[string]interface{}{"status": "Reviewed"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var application models.Application
	require.NoError(t, ts.DB.First(&application, "id = ?", applicationID).Error)
	assert.Equal(t, models.ApplicationStatusReviewed, application.Status)
	assert.NotNil(t, application.LastStatusUpdate)
}

func TestInvalidStatusRejectedWithoutSideEffects(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, jobseeker := helpers.NewJobseeker(t, ts)

	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")
	applicationID := helpers.Apply(t, ts, jobseekerToken, jobID)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/applications/"+applicationID+"/status",
		employerToken, map[string]interface{}{"status": "Archived"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var application models.Application
	require.NoError(t, ts.DB.First(&application, "id = ?", applicationID).Error)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)

	// No status notification was fanned out to the applicant.
	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND type = ?", jobseeker.ID, models.NotificationTypeApplicationStatus).
		Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWithdrawApplication(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)

	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")
	applicationID := helpers.Apply(t, ts, jobseekerToken, jobID)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/applications/"+applicationID, jobseekerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Application{}).Where("id = ?", applicationID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWithdrawOnlyWhilePending(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)

	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")
	applicationID := helpers.Apply(t, ts, jobseekerToken, jobID)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/applications/"+applicationID+"/status",
		employerToken, map[string]interface{}{"status": "Reviewed"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/applications/"+applicationID, jobseekerToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "Only pending applications can be withdrawn")

	var application models.Application
	require.NoError(t, ts.DB.First(&application, "id = ?", applicationID).Error)
	assert.Equal(t, models.ApplicationStatusReviewed, application.Status)
}

func TestGetApplicationIsPartyGated(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)
	strangerToken, _ := helpers.NewJobseeker(t, ts)

	jobID := helpers.CreateJob(t, ts, employerToken, "Backend Engineer")
	applicationID := helpers.Apply(t, ts, jobseekerToken, jobID)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/applications/"+applicationID, jobseekerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/"+applicationID, employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/"+applicationID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
