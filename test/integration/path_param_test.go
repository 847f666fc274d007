package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"workhive_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorCode(t *testing.T, body string) string {
	t.Helper()

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp.Error.Code
}

func TestMalformedPathIDsRejectedBeforeStore(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, _ := helpers.NewEmployer(t, ts)
	jobseekerToken, _ := helpers.NewJobseeker(t, ts)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   map[string]interface{}
	}{
		{"get job", http.MethodGet, "/api/v1/jobs/abc", "", nil},
		{"update job", http.MethodPut, "/api/v1/jobs/abc", employerToken, map[string]interface{}{"title": "X"}},
		{"delete job", http.MethodDelete, "/api/v1/jobs/abc", employerToken, nil},
		{"save job", http.MethodPost, "/api/v1/jobs/saved/abc", jobseekerToken, nil},
		{"unsave job", http.MethodDelete, "/api/v1/jobs/saved/abc", jobseekerToken, nil},
		{"apply", http.MethodPost, "/api/v1/applications/jobs/abc", jobseekerToken, nil},
		{"list job applications", http.MethodGet, "/api/v1/applications/jobs/abc/list", employerToken, nil},
		{"get application", http.MethodGet, "/api/v1/applications/abc", jobseekerToken, nil},
		{"update status", http.MethodPut, "/api/v1/applications/abc/status", employerToken, map[string]interface{}{"status": "Reviewed"}},
		{"withdraw", http.MethodDelete, "/api/v1/applications/abc", jobseekerToken, nil},
		{"mark notification read", http.MethodPut, "/api/v1/notifications/abc/read", jobseekerToken, nil},
		{"delete notification", http.MethodDelete, "/api/v1/notifications/abc", jobseekerToken, nil},
		{"jobseeker reviews", http.MethodGet, "/api/v1/reviews/jobseeker/abc", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, tc.method, tc.path, tc.token, tc.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
			assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body), body)
		})
	}
}

func TestMalformedIDDistinctFromMissing(t *testing.T) {
	ts := GetTestServer(t)

	// A well-formed id that matches nothing is a 404; a malformed one
	// never reaches the store and is a 400.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body), body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body), body)
}
