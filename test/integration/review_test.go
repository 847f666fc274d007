package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"workhive_backend/internal/models"
	"workhive_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.NewEmployer(t, ts)
	_, jobseeker := helpers.NewJobseeker(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", employerToken, map[string]interface{}{
		"jobseeker_id": jobseeker.ID,
		"rating":       4,
		"comment":      "Reliable and fast.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var review struct {
		ID          string `json:"id"`
		EmployerID  string `json:"employer_id"`
		JobseekerID string `json:"jobseeker_id"`
		Rating      int    `json:"rating"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &review))
	assert.Equal(t, employer.ID, review.EmployerID)
	assert.Equal(t, jobseeker.ID, review.JobseekerID)
	assert.Equal(t, 4, review.Rating)
}

func TestDuplicateReviewRejected(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.NewEmployer(t, ts)
	_, jobseeker := helpers.NewJobseeker(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", employerToken, map[string]interface{}{
		"jobseeker_id": jobseeker.ID,
		"rating":       4,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", employerToken, map[string]interface{}{
		"jobseeker_id": jobseeker.ID,
		"rating":       1,
		"comment":      "Changed my mind.",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Review{}).
		Where("employer_id = ? AND jobseeker_id = ?", employer.ID, jobseeker.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestReviewValidation(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.NewEmployer(t, ts)
	jobseekerToken, jobseeker := helpers.NewJobseeker(t, ts)

	// Rating outside 1..5.
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", employerToken, map[string]interface{}{
		"jobseeker_id": jobseeker.ID,
		"rating":       6,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Reviewing yourself.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", employerToken, map[string]interface{}{
		"jobseeker_id": employer.ID,
		"rating":       5,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Target must exist.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", employerToken, map[string]interface{}{
		"jobseeker_id": "00000000-0000-0000-0000-000000000000",
		"rating":       5,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Jobseekers cannot leave reviews.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", jobseekerToken, map[string]interface{}{
		"jobseeker_id": jobseeker.ID,
		"rating":       5,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestJobseekerReviewsAggregate(t *testing.T) {
	ts := GetTestServer(t)

	_, jobseeker := helpers.NewJobseeker(t, ts)

	// No reviews yet: empty list with a zeroed aggregate.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/reviews/jobseeker/"+jobseeker.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var summary struct {
		Reviews []json.RawMessage `json:"reviews"`
		Average float64           `json:"average"`
		Count   int64             `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &summary))
	assert.Empty(t, summary.Reviews)
	assert.Zero(t, summary.Average)
	assert.Zero(t, summary.Count)

	employerAToken, _ := helpers.NewEmployer(t, ts)
	employerBToken, _ := helpers.NewEmployer(t, ts)

	for token, rating := range map[string]int{employerAToken: 5, employerBToken: 4} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", token, map[string]interface{}{
			"jobseeker_id": jobseeker.ID,
			"rating":       rating,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/reviews/jobseeker/"+jobseeker.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &summary))
	assert.Len(t, summary.Reviews, 2)
	assert.InDelta(t, 4.5, summary.Average, 0.001)
	assert.EqualValues(t, 2, summary.Count)
}
