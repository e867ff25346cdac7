package repositories

import (
	"gorm.io/gorm"

	"github.com/planvault/database"
	"github.com/planvault/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects ordered by name
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Order("name asc").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByMember retrieves the projects a user holds a membership for
func (r *ProjectRepository) FindByMember(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.
		Joins("JOIN memberships ON memberships.project_id = projects.id").
		Where("memberships.user_id = ?", userID).
		Order("projects.name asc").
		Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Delete removes a project and everything it owns
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var recordIDs []uint
		if err := tx.Model(&models.Record{}).Where("project_id = ?", id).Pluck("id", &recordIDs).Error; err != nil {
			return err
		}
		if len(recordIDs) > 0 {
			if err := tx.Where("record_id IN ?", recordIDs).Delete(&models.RecordHistory{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Record{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
