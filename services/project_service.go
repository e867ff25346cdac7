package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/planvault/models"
	"github.com/planvault/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo    *repositories.ProjectRepository
	membershipRepo *repositories.MembershipRepository
	userRepo       *repositories.UserRepository
	perms          *PermissionService
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:    repositories.NewProjectRepository(),
		membershipRepo: repositories.NewMembershipRepository(),
		userRepo:       repositories.NewUserRepository(),
		perms:          NewPermissionService(),
	}
}

// ListProjects retrieves the projects visible to the actor. Admins see every
// project, everyone else only the ones they hold a membership for.
func (s *ProjectService) ListProjects(userID string, isAdmin bool) ([]models.Project, error) {
	if isAdmin {
		return s.projectRepo.FindAll()
	}
	return s.projectRepo.FindByMember(userID)
}

// GetProjectDetail retrieves a project the actor may view. Non-members get
// ErrNotFound rather than a hint that the project exists.
func (s *ProjectService) GetProjectDetail(projectID, userID string, isAdmin bool) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, err
	}
	if !isAdmin && !s.perms.CanView(userID, projectID) {
		return models.Project{}, ErrNotFound
	}
	return project, nil
}

// CanEdit reports whether the actor may mutate the project's records
func (s *ProjectService) CanEdit(userID, projectID string) bool {
	return s.perms.CanEdit(userID, projectID)
}

// CreateProject creates a project for an editor-capable actor and enrolls the
// creator as an editing member.
func (s *ProjectService) CreateProject(project models.Project, userID string, isAdmin bool) (models.Project, error) {
	if !isAdmin {
		profile, err := s.userRepo.FindProfile(userID)
		if err != nil || !profile.IsEditor() {
			return models.Project{}, ErrPermissionDenied
		}
	}

	project, err := s.projectRepo.Create(project)
	if err != nil {
		return models.Project{}, err
	}

	canEdit := true
	_, err = s.membershipRepo.Create(models.Membership{
		ProjectID: project.ID,
		UserID:    userID,
		CanEdit:   &canEdit,
	})
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject removes a project and, through the cascade, every record it
// owns. Only admins and editing members may delete.
func (s *ProjectService) DeleteProject(projectID, userID string, isAdmin bool) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !isAdmin && !s.perms.CanEdit(userID, projectID) {
		return ErrPermissionDenied
	}
	return s.projectRepo.Delete(projectID)
}
