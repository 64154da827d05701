package middleware

import (
	"net/http"
	"strings"

	"alumnihub_backend/internal/auth"
	"alumnihub_backend/internal/logger"
	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/services"
	"alumnihub_backend/pkg/apperrors"
	"alumnihub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionAuth resolves the bearer token to an identity on every request.
// Unknown, expired and revoked tokens are rejected with the same response.
func SessionAuth(sessionService services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.ErrUnauthenticated)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			abortWithError(c, apperrors.ErrUnauthenticated)
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			abortWithError(c, apperrors.InternalError(nil))
			return
		}

		info, err := sessionService.Validate(db, token)
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set("userID", info.UserID)
		c.Set("role", info.Role)

		ctx := logger.WithUserID(c.Request.Context(), info.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Admins pass
// every gate.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		if role == "" {
			abortWithError(c, apperrors.ErrForbidden)
			return
		}

		if !auth.RoleSatisfiesAny(role, roles...) {
			abortWithError(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

func GetRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get("role")
	if !exists {
		return ""
	}
	if role, ok := roleVal.(models.UserRole); ok {
		return role
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr)
	}
	return ""
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	status := err.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, apperrors.ErrorResponse{Error: err})
}
