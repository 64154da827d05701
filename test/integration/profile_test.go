package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"alumnihub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerAlumnus goes through the public API so the empty profile row
// created during registration is part of the flow under test.
func registerAlumnus(t *testing.T, ts *helpers.TestServer, email string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "sturdy-password-1",
		"first_name": "Pat",
		"last_name":  "Graduate",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	return helpers.Login(t, ts, email, "sturdy-password-1")
}

func TestGetOwnProfileAfterRegistration(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token := registerAlumnus(t, ts, "own.profile@test.com")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/alumni/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile struct {
		FirstName string   `json:"first_name"`
		LastName  string   `json:"last_name"`
		Tags      []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, "Pat", profile.FirstName)
	assert.Equal(t, "Graduate", profile.LastName)
	assert.Empty(t, profile.Tags)
}

func TestUpdateOwnProfile(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token := registerAlumnus(t, ts, "update.profile@test.com")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/alumni/profile", token, map[string]interface{}{
		"first_name":      "Pat",
		"last_name":       "Graduate",
		"graduation_year": 2014,
		"major":           "Computer Science",
		"employer":        "Initech",
		"location":        "Boston",
		"tags":            []string{"Mentoring", "robotics", "MENTORING"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile struct {
		GraduationYear int      `json:"graduation_year"`
		Major          string   `json:"major"`
		Tags           []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, 2014, profile.GraduationYear)
	assert.Equal(t, "Computer Science", profile.Major)

	// Tags are lowercased and deduplicated.
	assert.ElementsMatch(t, []string{"mentoring", "robotics"}, profile.Tags)
}

func TestUpdateReplacesTagSet(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token := registerAlumnus(t, ts, "tags.profile@test.com")

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/alumni/profile", token, map[string]interface{}{
		"tags": []string{"mentoring", "robotics"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/alumni/profile", token, map[string]interface{}{
		"tags": []string{"sailing"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var profile struct {
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, []string{"sailing"}, profile.Tags)
}

func TestViewAnotherProfile(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	ownerToken := registerAlumnus(t, ts, "viewed@test.com")
	viewerToken := registerAlumnus(t, ts, "viewer@test.com")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/alumni/profile", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var own struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &own))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/alumni/profile/"+own.ID, viewerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var other struct {
		ID        string `json:"id"`
		FirstName string `json:"first_name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &other))
	assert.Equal(t, own.ID, other.ID)
}

func TestProfileNotFound(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token := registerAlumnus(t, ts, "lost@test.com")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/alumni/profile/no-such-id", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "PROFILE_NOT_FOUND")
}

func TestAchievementLifecycle(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token := registerAlumnus(t, ts, "achiever@test.com")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/alumni/profile/achievements", token, map[string]interface{}{
		"title": "Founded the robotics club",
		"year":  2014,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var achievement struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &achievement))
	assert.Equal(t, "Founded the robotics club", achievement.Title)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/alumni/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Founded the robotics club")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/alumni/profile/achievements/"+achievement.ID, token, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/alumni/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "Founded the robotics club")
}

func TestCannotDeleteAnotherUsersAchievement(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	ownerToken := registerAlumnus(t, ts, "ach.owner@test.com")
	otherToken := registerAlumnus(t, ts, "ach.other@test.com")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/alumni/profile/achievements", ownerToken, map[string]interface{}{
		"title": "Dean's list",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var achievement struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &achievement))

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/alumni/profile/achievements/"+achievement.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestAdminCanEditAnyProfile(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	registerAlumnus(t, ts, "edited@test.com")
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	// Resolve the target's user id through the admin listing.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users?limit=50", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Data []struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))

	var targetID string
	for _, u := range listing.Data {
		if u.Email == "edited@test.com" {
			targetID = u.ID
		}
	}
	require.NotEmpty(t, targetID)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/users/"+targetID+"/profile", adminToken, map[string]interface{}{
		"first_name": "Renamed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Renamed")
}
