package dto

// MembershipRequest adds a user to a project or updates their edit flag.
// CanEdit left null means the user's global role decides.
type MembershipRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	CanEdit   *bool  `json:"canEdit"`
}

// RoleRequest sets a user's global profile role
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}
