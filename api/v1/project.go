package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planvault/dto"
	"github.com/planvault/models"
	"github.com/planvault/services"
)

// ProjectController handles project CRUD and the project detail view
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.POST("", c.CreateProject)
		projects.GET("/:id", c.GetProject)
		projects.DELETE("/:id", c.DeleteProject)
	}
}

// ListProjects returns the projects visible to the actor
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	isAdmin := ctx.GetString("role") == string(models.RoleAdmin)

	projects, err := c.projectService.ListProjects(userID, isAdmin)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	responses := make([]dto.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = projectResponse(project)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   responses,
	})
}

// GetProject returns one project with the catalog navigation and the actor's
// edit capability
func (c *ProjectController) GetProject(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	isAdmin := ctx.GetString("role") == string(models.RoleAdmin)

	project, err := c.projectService.GetProjectDetail(ctx.Param("id"), userID, isAdmin)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": dto.ProjectDetailResponse{
			Project:  projectResponse(project),
			Sections: SectionsNav(),
			CanEdit:  isAdmin || c.projectService.CanEdit(userID, project.ID),
		},
	})
}

// CreateProject creates a project and enrolls the creator as editing member
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	isAdmin := ctx.GetString("role") == string(models.RoleAdmin)

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := c.projectService.CreateProject(models.Project{
		Name:        req.Name,
		Description: req.Description,
	}, userID, isAdmin)
	if err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Editing not permitted"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   projectResponse(project),
	})
}

// DeleteProject removes a project and all records it owns
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	isAdmin := ctx.GetString("role") == string(models.RoleAdmin)

	err := c.projectService.DeleteProject(ctx.Param("id"), userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, services.ErrPermissionDenied):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Editing not permitted"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted",
	})
}

func projectResponse(project models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
