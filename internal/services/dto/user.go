package dto

type AdminUpdateStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=active disabled"`
}

type AdminUpdateRoleRequest struct {
	Role string `json:"role" binding:"required" validate:"required,is-user-role"`
}
