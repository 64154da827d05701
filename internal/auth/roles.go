package auth

import "alumnihub_backend/internal/models"

// RoleSatisfies reports whether a user's role passes a check for the
// required role. The hierarchy is flat except that admin satisfies
// every check; this is deliberate policy, not an accident.
func RoleSatisfies(userRole, required models.UserRole) bool {
	if userRole == models.UserRoleAdmin {
		return true
	}
	return userRole == required
}

// RoleSatisfiesAny is RoleSatisfies over a set.
func RoleSatisfiesAny(userRole models.UserRole, required ...models.UserRole) bool {
	for _, r := range required {
		if RoleSatisfies(userRole, r) {
			return true
		}
	}
	return false
}
