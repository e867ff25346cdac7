package dto

import "time"

// CreateProjectRequest represents the data needed to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ProjectResponse represents project data sent to clients
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectDetailResponse adds the catalog navigation and the actor's edit
// capability to the project data
type ProjectDetailResponse struct {
	Project  ProjectResponse `json:"project"`
	Sections []SectionNav    `json:"sections"`
	CanEdit  bool            `json:"canEdit"`
}
