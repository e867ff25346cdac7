package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership links a user to a project. A user only sees projects they hold a
// membership for. CanEdit is tri-state: nil means no explicit per-project
// decision (the user's global role decides), true grants edit, false denies
// edit regardless of global role.
type Membership struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_membership_project_user"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_membership_project_user"`
	CanEdit   *bool     `json:"canEdit" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns an ID when the database hasn't
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
