package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/planvault/middleware"
	"github.com/planvault/services"
)

// RegisterRoutes sets up all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, sectionService *services.SectionService) {
	// Public routes
	router.GET("/health", HealthCheck)
	router.POST("/auth/register", Register)
	router.POST("/auth/login", Login)
	router.POST("/auth/logout", Logout)

	// Authenticated routes
	authenticated := router.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.GET("/auth/me", GetCurrentUser)

		NewProjectController(services.NewProjectService()).RegisterRoutes(authenticated)
		NewSectionController(sectionService).RegisterRoutes(authenticated)
	}

	// Admin-only routes
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		NewMembershipController(services.NewMembershipService()).RegisterRoutes(admin)
	}
}
