package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"alumnihub_backend/internal/models"
	"alumnihub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createJob(t *testing.T, ts *helpers.TestServer, token string, overrides map[string]interface{}) string {
	t.Helper()

	body := map[string]interface{}{
		"title":       "Backend Engineer",
		"company":     "Initech",
		"location":    "Boston",
		"job_type":    "full-time",
		"description": "Build the reporting pipeline.",
	}
	for k, v := range overrides {
		body[k] = v
	}

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(resBody), &job))
	require.NotEmpty(t, job.ID)
	return job.ID
}

func TestJobCreationRequiresStaff(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	alumniToken, _ := helpers.CreateAndLoginAlumni(t, ts)
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", alumniToken, map[string]interface{}{
		"title":   "Rogue Posting",
		"company": "Nope Inc",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	staffToken, _ := helpers.CreateAndLoginStaff(t, ts)
	createJob(t, ts, staffToken, nil)
}

func TestJobApplicationFlow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	staffToken, _ := helpers.CreateAndLoginStaff(t, ts)
	jobID := createJob(t, ts, staffToken, nil)

	alumniToken, _ := helpers.CreateAndLoginAlumni(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/apply/"+jobID, alumniToken, map[string]interface{}{
		"cover_note": "I built the reporting pipeline at my last job.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var application struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &application))
	assert.Equal(t, string(models.ApplicationStatusPending), application.Status)

	// Applying twice is a conflict.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/apply/"+jobID, alumniToken, map[string]interface{}{})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "ALREADY_APPLIED")

	// The poster reviews and accepts.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/applications", staffToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, application.ID)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/jobs/"+jobID+"/applications/"+application.ID, staffToken, map[string]interface{}{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestApplicationReviewIsRestrictedToPoster(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	posterToken, _ := helpers.CreateAndLoginStaff(t, ts)
	jobID := createJob(t, ts, posterToken, nil)

	alumniToken, _ := helpers.CreateAndLoginAlumni(t, ts)
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/apply/"+jobID, alumniToken, map[string]interface{}{})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// A different staff member did not post this job.
	otherStaffToken, _ := helpers.CreateAndLoginStaff(t, ts)
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/applications", otherStaffToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// Admins can review anything.
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/applications", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestCannotApplyToClosedJob(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	staffToken, _ := helpers.CreateAndLoginStaff(t, ts)
	expiredID := createJob(t, ts, staffToken, map[string]interface{}{
		"expires_at": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})

	alumniToken, _ := helpers.CreateAndLoginAlumni(t, ts)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/apply/"+expiredID, alumniToken, map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body, "JOB_CLOSED")

	// Deactivated postings reject applications too.
	inactiveID := createJob(t, ts, staffToken, nil)
	require.NoError(t, ts.DB.Model(&models.JobPosting{}).
		Where("id = ?", inactiveID).
		Update("is_active", false).Error)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/apply/"+inactiveID, alumniToken, map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body, "JOB_CLOSED")
}

func TestAlumniOnlySeeActiveJobs(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	staffToken, _ := helpers.CreateAndLoginStaff(t, ts)
	createJob(t, ts, staffToken, map[string]interface{}{"title": "Active Role"})
	hiddenID := createJob(t, ts, staffToken, map[string]interface{}{"title": "Hidden Role"})
	require.NoError(t, ts.DB.Model(&models.JobPosting{}).
		Where("id = ?", hiddenID).
		Update("is_active", false).Error)

	alumniToken, _ := helpers.CreateAndLoginAlumni(t, ts)
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", alumniToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Active Role")
	assert.NotContains(t, body, "Hidden Role")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", staffToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Hidden Role")
}

func TestUpdateApplicationStatusValidation(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	staffToken, _ := helpers.CreateAndLoginStaff(t, ts)
	jobID := createJob(t, ts, staffToken, nil)

	alumniToken, _ := helpers.CreateAndLoginAlumni(t, ts)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/apply/"+jobID, alumniToken, map[string]interface{}{})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var application struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &application))

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/jobs/"+jobID+"/applications/"+application.ID, staffToken, map[string]interface{}{
		"status": "hired-maybe",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
}
