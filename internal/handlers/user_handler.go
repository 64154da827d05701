package handlers

import (
	"net/http"

	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/services"
	"alumnihub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the admin account endpoints.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c *gin.Context) {
	offset, limit := ParsePagination(c)

	db := h.GetDB(c)

	result, err := h.userService.List(db, offset, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) SetStatus(c *gin.Context) {
	var req dto.AdminUpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.SetStatus(db, c.Param("id"), models.UserStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}

func (h *UserHandler) SetRole(c *gin.Context) {
	var req dto.AdminUpdateRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.SetRole(db, c.Param("id"), models.UserRole(req.Role)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User role updated"})
}
