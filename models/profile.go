package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents a user's global capability level
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// UserProfile carries the global role for a user. It is created automatically
// on registration and acts as a fallback when a membership has no explicit
// per-project edit flag.
type UserProfile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	Role      Role      `json:"role" gorm:"type:varchar(10);default:'viewer'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsEditor reports whether the profile grants editor capability
func (p UserProfile) IsEditor() bool {
	return p.Role == RoleEditor || p.Role == RoleAdmin
}

// BeforeCreate assigns an ID when the database hasn't
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
