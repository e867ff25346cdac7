package repositories

import (
	"github.com/planvault/database"
	"github.com/planvault/models"
)

// MembershipRepository handles database operations for project memberships
type MembershipRepository struct{}

// NewMembershipRepository creates a new membership repository instance
func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{}
}

// FindByProjectAndUser retrieves the membership of a user in a project
func (r *MembershipRepository) FindByProjectAndUser(projectID, userID string) (models.Membership, error) {
	var membership models.Membership
	result := database.DB.First(&membership, "project_id = ? AND user_id = ?", projectID, userID)
	return membership, result.Error
}

// FindByProjectID retrieves all memberships of a project with their users
func (r *MembershipRepository) FindByProjectID(projectID string) ([]models.Membership, error) {
	var memberships []models.Membership
	result := database.DB.Preload("User").Where("project_id = ?", projectID).Find(&memberships)
	return memberships, result.Error
}

// FindByID retrieves a membership by its ID
func (r *MembershipRepository) FindByID(id string) (models.Membership, error) {
	var membership models.Membership
	result := database.DB.First(&membership, "id = ?", id)
	return membership, result.Error
}

// Create inserts a new membership into the database
func (r *MembershipRepository) Create(membership models.Membership) (models.Membership, error) {
	result := database.DB.Create(&membership)
	return membership, result.Error
}

// Update modifies an existing membership
func (r *MembershipRepository) Update(membership models.Membership) error {
	return database.DB.Model(&models.Membership{}).
		Where("id = ?", membership.ID).
		Update("can_edit", membership.CanEdit).Error
}

// Delete removes a membership from the database
func (r *MembershipRepository) Delete(id string) error {
	return database.DB.Delete(&models.Membership{}, "id = ?", id).Error
}

// Exists checks whether a user holds a membership in a project
func (r *MembershipRepository) Exists(projectID, userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Membership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}
