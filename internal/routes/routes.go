package routes

import (
	"alumnihub_backend/internal/handlers"
	"alumnihub_backend/internal/middleware"
	"alumnihub_backend/internal/models"
	"alumnihub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API. Everything except registration and
// login sits behind session authentication.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	sessionService services.SessionService,
) {
	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", appHandlers.AuthHandler.Register)
		auth.POST("/login", appHandlers.AuthHandler.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.SessionAuth(sessionService))
	{
		authed.POST("/auth/logout", appHandlers.AuthHandler.Logout)
		authed.POST("/auth/change-password", appHandlers.AuthHandler.ChangePassword)

		alumni := authed.Group("/alumni")
		{
			alumni.GET("/profile", appHandlers.ProfileHandler.GetOwn)
			alumni.PUT("/profile", appHandlers.ProfileHandler.Update)
			alumni.GET("/profile/:id", appHandlers.ProfileHandler.GetByID)
			alumni.POST("/profile/achievements", appHandlers.ProfileHandler.AddAchievement)
			alumni.DELETE("/profile/achievements/:id", appHandlers.ProfileHandler.DeleteAchievement)

			alumni.GET("/search", appHandlers.SearchHandler.SearchAlumni)
		}

		events := authed.Group("/events")
		{
			events.GET("", appHandlers.EventHandler.List)
			events.GET("/:id", appHandlers.EventHandler.Get)
			events.POST("/register/:id", appHandlers.EventHandler.Register)
			events.DELETE("/register/:id", appHandlers.EventHandler.CancelRegistration)

			staff := events.Group("")
			staff.Use(middleware.RequireRoles(models.UserRoleStaff))
			{
				staff.POST("", appHandlers.EventHandler.Create)
			}
		}

		jobs := authed.Group("/jobs")
		{
			jobs.GET("", appHandlers.JobHandler.List)
			jobs.GET("/:id", appHandlers.JobHandler.Get)
			jobs.POST("/apply/:id", appHandlers.JobHandler.Apply)

			// Application review is authorized per posting inside the
			// service, not by a blanket role gate.
			jobs.GET("/:id/applications", appHandlers.JobHandler.ListApplications)
			jobs.PATCH("/:id/applications/:applicationId", appHandlers.JobHandler.UpdateApplicationStatus)

			staff := jobs.Group("")
			staff.Use(middleware.RequireRoles(models.UserRoleStaff))
			{
				staff.POST("", appHandlers.JobHandler.Create)
			}
		}

		admin := authed.Group("/admin")
		admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.GET("/users", appHandlers.UserHandler.List)
			admin.GET("/users/:id", appHandlers.UserHandler.Get)
			admin.PATCH("/users/:id/status", appHandlers.UserHandler.SetStatus)
			admin.PATCH("/users/:id/role", appHandlers.UserHandler.SetRole)
			admin.PUT("/users/:id/profile", appHandlers.ProfileHandler.UpdateByUserID)
		}
	}
}
