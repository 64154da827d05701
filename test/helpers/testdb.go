package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"alumnihub_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password if it is still raw.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = string(hashed)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.UserRoleAlumni
	}
	user.Email = strings.ToLower(user.Email)

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Email)
}

// CreateAndLoginUser creates an account and logs it in through the API,
// returning the session token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	token := Login(t, ts, email, password)
	return token, user
}

// Login authenticates through the API and returns the session token.
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: %s", body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token
}

// CreateAndLoginAlumni creates an alumni account with a unique email.
// Registration gave it an empty profile row; the caller fills it in.
func CreateAndLoginAlumni(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("alumni_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, email, "sturdy-password-1", models.UserRoleAlumni)
}

// CreateAndLoginAdmin creates an admin account with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, email, "sturdy-password-1", models.UserRoleAdmin)
}

// CreateAndLoginStaff creates a staff account with a unique email.
func CreateAndLoginStaff(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("staff_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, email, "sturdy-password-1", models.UserRoleStaff)
}

// CreateProfile inserts an alumni profile with the given fields.
func CreateProfile(t *testing.T, db *gorm.DB, profile *models.AlumniProfile) {
	t.Helper()
	require.NoError(t, db.Create(profile).Error, "failed to create test profile")
}
