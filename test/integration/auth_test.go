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

func TestRegisterAndLoginRoundtrip(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":      "Grad.One@Test.com",
		"password":   "sturdy-password-1",
		"first_name": "Grad",
		"last_name":  "One",
	})
	require.Equal(t, http.StatusCreated, regRes.StatusCode, "registration failed: %s", regBody)

	var regResponse struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(regBody), &regResponse))
	assert.NotEmpty(t, regResponse.UserID)

	// Email comparison is case-insensitive.
	logRes, logBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "grad.one@test.com",
		"password": "sturdy-password-1",
	})
	require.Equal(t, http.StatusOK, logRes.StatusCode, "login failed: %s", logBody)

	var logResponse struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBody), &logResponse))
	assert.NotEmpty(t, logResponse.Token)
	assert.Equal(t, regResponse.UserID, logResponse.User.ID)
	assert.Equal(t, "grad.one@test.com", logResponse.User.Email)
	assert.NotContains(t, logBody, "password_hash")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	body := map[string]interface{}{
		"email":    "dupe@test.com",
		"password": "sturdy-password-1",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, resBody, "DUPLICATE_EMAIL")

	// Same address with different casing is still a duplicate.
	body["email"] = "DUPE@test.com"
	res, resBody = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, resBody, "DUPLICATE_EMAIL")
}

func TestRegisterWeakPassword(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	for _, password := range []string{"short", "password", "12345678"} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
			"email":    "weak@test.com",
			"password": password,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, "password %q should be rejected", password)
		assert.Contains(t, body, "WEAK_PASSWORD")
	}
}

func TestRegisterAdminRoleRejected(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "sneaky@test.com",
		"password": "sturdy-password-1",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "INVALID_USER_ROLE")
}

// Failed logins must be indistinguishable whether the account is
// unknown, the password is wrong, or the account is disabled.
func TestLoginFailureShapeIsUniform(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "known@test.com",
		PasswordHash: "sturdy-password-1",
		Role:         models.UserRoleAlumni,
	})
	helpers.CreateUser(t, ts.DB, &models.User{
		Email:        "disabled@test.com",
		PasswordHash: "sturdy-password-1",
		Role:         models.UserRoleAlumni,
		Status:       models.UserStatusDisabled,
	})

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@test.com", "sturdy-password-1"},
		{"wrong password", "known@test.com", "not-the-password"},
		{"disabled account", "disabled@test.com", "sturdy-password-1"},
	}

	var bodies []string
	for _, tc := range cases {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"email":    tc.email,
			"password": tc.password,
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, tc.name)
		assert.Contains(t, body, "AUTH_FAILURE", tc.name)
		bodies = append(bodies, body)
	}

	assert.Equal(t, bodies[0], bodies[1], "failure responses must not differ")
	assert.Equal(t, bodies[1], bodies[2], "failure responses must not differ")
}

func TestLogoutRevokesSession(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/events", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/events", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_TOKEN")

	// Logging out twice is not an error as far as the token store is
	// concerned, but the request itself no longer authenticates.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMissingOrMalformedToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/events", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "UNAUTHENTICATED")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/events", "made-up-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestChangePasswordRevokesOtherSessions(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, user := helpers.CreateAndLoginAlumni(t, ts)
	otherToken := helpers.Login(t, ts, user.Email, "sturdy-password-1")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/change-password", token, map[string]interface{}{
		"current_password": "sturdy-password-1",
		"new_password":     "even-sturdier-2",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "change password failed: %s", body)

	// Both old sessions are gone.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/events", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/events", otherToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Only the new password works now.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "sturdy-password-1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	helpers.Login(t, ts, user.Email, "even-sturdier-2")
}

// Expiry is passive: nothing deletes the row, the token just stops
// validating once its expiry moment has passed.
func TestExpiredSessionIsRejected(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	err := ts.DB.Model(&models.Session{}).
		Where("token = ?", token).
		Update("expires_at", time.Now().Add(-time.Minute)).Error
	require.NoError(t, err)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/events", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginAlumni(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/change-password", token, map[string]interface{}{
		"current_password": "wrong",
		"new_password":     "even-sturdier-2",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "AUTH_FAILURE")
}
