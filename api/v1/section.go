package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/planvault/dto"
	"github.com/planvault/forms"
	"github.com/planvault/registry"
	"github.com/planvault/repositories"
	"github.com/planvault/services"
)

// SectionController serves table rows and routes every table mutation through
// the generic gateway, whatever the table's schema is.
type SectionController struct {
	sectionService *services.SectionService
	permService    *services.PermissionService
	projectRepo    *repositories.ProjectRepository
}

// NewSectionController creates a new section controller
func NewSectionController(sectionService *services.SectionService) *SectionController {
	return &SectionController{
		sectionService: sectionService,
		permService:    services.NewPermissionService(),
		projectRepo:    repositories.NewProjectRepository(),
	}
}

// RegisterRoutes registers section routes
func (c *SectionController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sections", c.ListSections)

	projects := router.Group("/projects")
	{
		projects.GET("/:id/sections/:tableKey", c.GetSectionData)
		projects.POST("/:id/sections/:tableKey/rows", c.CreateRow)
		projects.PUT("/:id/sections/:tableKey/rows", c.UpdateRow)
		projects.PUT("/:id/sections/:tableKey/rows/:rowId", c.UpdateRow)
		projects.PATCH("/:id/sections/:tableKey/rows", c.UpdateRow)
		projects.PATCH("/:id/sections/:tableKey/rows/:rowId", c.UpdateRow)
		projects.DELETE("/:id/sections/:tableKey/rows", c.DeleteRow)
		projects.DELETE("/:id/sections/:tableKey/rows/:rowId", c.DeleteRow)
	}
}

// ListSections returns the ordered catalog for navigation
func (c *SectionController) ListSections(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   SectionsNav(),
	})
}

// GetSectionData returns the current rows and field metadata of one table
func (c *SectionController) GetSectionData(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	projectID := ctx.Param("id")

	if _, err := c.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !c.permService.CanView(userID, projectID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	table, ok := registry.FindTable(ctx.Param("tableKey"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Unknown table"})
		return
	}

	ctx.JSON(http.StatusOK, dto.SectionDataResponse{
		Rows:      c.sectionService.GetRows(projectID, table.Key),
		Fields:    fieldMetadata(table),
		Singleton: table.Singleton,
		Table:     table.Key,
	})
}

// CreateRow creates one row of a table
func (c *SectionController) CreateRow(ctx *gin.Context) {
	userID, projectID, ok := c.mutationScope(ctx)
	if !ok {
		return
	}
	payload, err := payloadFrom(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	row, err := c.sectionService.CreateRow(userID, projectID, ctx.Param("tableKey"), payload)
	if err != nil {
		c.writeMutationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Success: true, Row: row, ID: row["id"]})
}

// UpdateRow updates one row of a table; for singleton tables the row id is
// ignored and the single record is written
func (c *SectionController) UpdateRow(ctx *gin.Context) {
	userID, projectID, ok := c.mutationScope(ctx)
	if !ok {
		return
	}
	payload, err := payloadFrom(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rowID, err := rowIDFrom(ctx)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Row not found"})
		return
	}

	row, err := c.sectionService.UpdateRow(userID, projectID, ctx.Param("tableKey"), rowID, payload)
	if err != nil {
		c.writeMutationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Success: true, Row: row, ID: row["id"]})
}

// DeleteRow deletes one row of a table
func (c *SectionController) DeleteRow(ctx *gin.Context) {
	userID, projectID, ok := c.mutationScope(ctx)
	if !ok {
		return
	}

	rowID, err := rowIDFrom(ctx)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Row not found"})
		return
	}

	err = c.sectionService.DeleteRow(userID, projectID, ctx.Param("tableKey"), rowID)
	if err != nil {
		c.writeMutationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}

// mutationScope resolves the project and requires the actor to at least be a
// member before any mutation is attempted.
func (c *SectionController) mutationScope(ctx *gin.Context) (userID, projectID string, ok bool) {
	userID = ctx.GetString("userId")
	projectID = ctx.Param("id")

	if _, err := c.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return "", "", false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return "", "", false
	}
	if !c.permService.CanView(userID, projectID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return "", "", false
	}
	return userID, projectID, true
}

// writeMutationError translates gateway errors to the HTTP surface
func (c *SectionController) writeMutationError(ctx *gin.Context, err error) {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Errors: verr.Fields})
	case errors.Is(err, services.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Editing not permitted"})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrRowIDRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Row id required"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// payloadFrom reads the mutation payload from a JSON body or form fields
func payloadFrom(ctx *gin.Context) (map[string]any, error) {
	payload := map[string]any{}
	if strings.Contains(ctx.ContentType(), "application/json") {
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			return nil, err
		}
		return payload, nil
	}
	if err := ctx.Request.ParseForm(); err != nil {
		return nil, err
	}
	for key, values := range ctx.Request.PostForm {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}
	return payload, nil
}

// rowIDFrom parses the optional row id path parameter. An absent id is valid
// (singleton routes); a malformed one can never resolve to a row.
func rowIDFrom(ctx *gin.Context) (*uint, error) {
	raw := ctx.Param("rowId")
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	id := uint(parsed)
	return &id, nil
}

// fieldMetadata projects a table schema into the field list served to clients
func fieldMetadata(table registry.TableConfig) []dto.FieldMeta {
	meta := make([]dto.FieldMeta, len(table.Fields))
	for i, field := range table.Fields {
		meta[i] = dto.FieldMeta{
			Name:   field.Name,
			Label:  field.Label,
			Type:   string(field.Type),
			Widget: string(forms.WidgetFor(field.Type)),
		}
	}
	return meta
}

// SectionsNav builds the catalog navigation metadata
func SectionsNav() []dto.SectionNav {
	nav := make([]dto.SectionNav, len(registry.Sections))
	for i, section := range registry.Sections {
		tables := make([]dto.TableNav, len(section.Tables))
		for j, table := range section.Tables {
			tables[j] = dto.TableNav{
				Key:       table.Key,
				Title:     table.Title,
				Singleton: table.Singleton,
				Fields:    fieldMetadata(table),
			}
		}
		nav[i] = dto.SectionNav{
			Key:         section.Key,
			Title:       section.Title,
			Description: section.Description,
			Tables:      tables,
		}
	}
	return nav
}
