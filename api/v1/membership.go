package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planvault/dto"
	"github.com/planvault/models"
	"github.com/planvault/services"
)

// MembershipController handles the admin-only membership and role endpoints
type MembershipController struct {
	membershipService *services.MembershipService
}

// NewMembershipController creates a new membership controller
func NewMembershipController(membershipService *services.MembershipService) *MembershipController {
	return &MembershipController{membershipService: membershipService}
}

// RegisterRoutes registers membership admin routes
func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/memberships", c.ListMemberships)
	router.POST("/memberships", c.UpsertMembership)
	router.DELETE("/memberships/:id", c.RemoveMembership)
	router.PUT("/users/:id/role", c.SetUserRole)
}

// ListMemberships returns the memberships of one project
func (c *MembershipController) ListMemberships(ctx *gin.Context) {
	projectID := ctx.Query("projectId")
	if projectID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "projectId query parameter is required"})
		return
	}

	memberships, err := c.membershipService.ListMemberships(projectID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list memberships"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   memberships,
	})
}

// UpsertMembership adds a user to a project or updates their edit flag
func (c *MembershipController) UpsertMembership(ctx *gin.Context) {
	var req dto.MembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	membership, err := c.membershipService.UpsertMembership(req.ProjectID, req.UserID, req.CanEdit)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project or user not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save membership"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   membership,
	})
}

// RemoveMembership deletes a membership
func (c *MembershipController) RemoveMembership(ctx *gin.Context) {
	err := c.membershipService.RemoveMembership(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove membership"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Membership removed",
	})
}

// SetUserRole updates a user's global profile role
func (c *MembershipController) SetUserRole(ctx *gin.Context) {
	var req dto.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := c.membershipService.SetUserRole(ctx.Param("id"), models.Role(req.Role))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Role updated",
	})
}
