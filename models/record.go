package models

import (
	"time"

	"gorm.io/datatypes"
)

// Record is one row of a catalog table, scoped to a project. The schema of
// Fields is declared by the table's catalog entry, not by this struct; the
// integer primary key makes insertion order the natural row order.
type Record struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	ProjectID string            `json:"projectId" gorm:"type:uuid;not null;index:idx_records_project_table"`
	TableKey  string            `json:"tableKey" gorm:"not null;index:idx_records_project_table"`
	Fields    datatypes.JSONMap `json:"fields" gorm:"type:jsonb"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	// Relations
	Histories []RecordHistory `json:"histories,omitempty" gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Record model
func (Record) TableName() string {
	return "records"
}

// RecordHistory is an append-only dated value owned by a parent record, such
// as risk exposure over time. Never mutated after creation.
type RecordHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RecordID  uint      `json:"recordId" gorm:"not null;index"`
	Kind      string    `json:"kind" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Value     string    `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name for RecordHistory model
func (RecordHistory) TableName() string {
	return "record_histories"
}
