package models

type UserRole string
type UserStatus string
type RegistrationStatus string
type ApplicationStatus string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleAlumni UserRole = "alumni"
	UserRoleStaff  UserRole = "staff"

	// Users are never hard-deleted, only disabled, so event, job and
	// profile rows always resolve to an owner.
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"

	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidRole reports whether a role string is one of the known tiers.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleAlumni, UserRoleStaff:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether a status transition target is known.
func ValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
