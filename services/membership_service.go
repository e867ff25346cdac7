package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/planvault/models"
	"github.com/planvault/repositories"
)

// MembershipService handles the administrative management of project
// memberships and global roles. Membership is not self-service; the routes
// calling into this service sit behind the admin middleware.
type MembershipService struct {
	membershipRepo *repositories.MembershipRepository
	projectRepo    *repositories.ProjectRepository
	userRepo       *repositories.UserRepository
}

// NewMembershipService creates a new membership service instance
func NewMembershipService() *MembershipService {
	return &MembershipService{
		membershipRepo: repositories.NewMembershipRepository(),
		projectRepo:    repositories.NewProjectRepository(),
		userRepo:       repositories.NewUserRepository(),
	}
}

// ListMemberships retrieves all memberships of a project
func (s *MembershipService) ListMemberships(projectID string) ([]models.Membership, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.membershipRepo.FindByProjectID(projectID)
}

// UpsertMembership adds a user to a project or updates their edit flag. The
// (project, user) pair stays unique.
func (s *MembershipService) UpsertMembership(projectID, userID string, canEdit *bool) (models.Membership, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Membership{}, ErrNotFound
		}
		return models.Membership{}, err
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Membership{}, ErrNotFound
		}
		return models.Membership{}, err
	}

	existing, err := s.membershipRepo.FindByProjectAndUser(projectID, userID)
	if err == nil {
		existing.CanEdit = canEdit
		if err := s.membershipRepo.Update(existing); err != nil {
			return models.Membership{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Membership{}, err
	}

	return s.membershipRepo.Create(models.Membership{
		ProjectID: projectID,
		UserID:    userID,
		CanEdit:   canEdit,
	})
}

// RemoveMembership deletes a membership by its ID
func (s *MembershipService) RemoveMembership(id string) error {
	if _, err := s.membershipRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.membershipRepo.Delete(id)
}

// SetUserRole updates a user's global profile role
func (s *MembershipService) SetUserRole(userID string, role models.Role) error {
	if role != models.RoleViewer && role != models.RoleEditor && role != models.RoleAdmin {
		return errors.New("invalid role")
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.userRepo.EnsureProfile(userID); err != nil {
		return err
	}
	return s.userRepo.SetProfileRole(userID, role)
}
