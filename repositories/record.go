package repositories

import (
	"gorm.io/gorm"

	"github.com/planvault/database"
	"github.com/planvault/models"
)

// RecordRepository handles database operations for section records
type RecordRepository struct{}

// NewRecordRepository creates a new record repository instance
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

// FindForTable retrieves all records of a table scoped to one project, in
// creation order. History sub-records are loaded newest-first when requested.
func (r *RecordRepository) FindForTable(projectID, tableKey string, withHistory bool) ([]models.Record, error) {
	query := database.DB.Where("project_id = ? AND table_key = ?", projectID, tableKey).Order("id asc")
	if withHistory {
		query = query.Preload("Histories", func(db *gorm.DB) *gorm.DB {
			return db.Order("date desc")
		})
	}
	var records []models.Record
	result := query.Find(&records)
	return records, result.Error
}

// FindByIDAndProject retrieves one record by id, enforcing project and table
// scope. A record belonging to another project is reported as not found.
func (r *RecordRepository) FindByIDAndProject(id uint, projectID, tableKey string) (models.Record, error) {
	var record models.Record
	result := database.DB.First(&record, "id = ? AND project_id = ? AND table_key = ?", id, projectID, tableKey)
	return record, result.Error
}

// FirstForTable retrieves the first record of a table in a project, used to
// resolve singletons.
func (r *RecordRepository) FirstForTable(projectID, tableKey string) (models.Record, error) {
	var record models.Record
	result := database.DB.Where("project_id = ? AND table_key = ?", projectID, tableKey).
		Order("id asc").First(&record)
	return record, result.Error
}

// Create inserts a new record into the database
func (r *RecordRepository) Create(record models.Record) (models.Record, error) {
	result := database.DB.Create(&record)
	return record, result.Error
}

// Save persists changes to an existing record
func (r *RecordRepository) Save(record models.Record) (models.Record, error) {
	result := database.DB.Save(&record)
	return record, result.Error
}

// Delete removes a record and its history sub-records
func (r *RecordRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ?", id).Delete(&models.RecordHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Record{}, "id = ?", id).Error
	})
}

// CountForTable counts the records of a table in a project
func (r *RecordRepository) CountForTable(projectID, tableKey string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Record{}).
		Where("project_id = ? AND table_key = ?", projectID, tableKey).
		Count(&count).Error
	return count, err
}
