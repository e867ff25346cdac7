package repositories

import (
	"github.com/planvault/database"
	"github.com/planvault/models"
)

// UserRepository handles database operations for users and their profiles
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// FindProfile retrieves the profile for a user
func (r *UserRepository) FindProfile(userID string) (models.UserProfile, error) {
	var profile models.UserProfile
	result := database.DB.First(&profile, "user_id = ?", userID)
	return profile, result.Error
}

// EnsureProfile creates a viewer profile for the user when none exists yet
func (r *UserRepository) EnsureProfile(userID string) (models.UserProfile, error) {
	var profile models.UserProfile
	result := database.DB.Where(models.UserProfile{UserID: userID}).
		Attrs(models.UserProfile{Role: models.RoleViewer}).
		FirstOrCreate(&profile)
	return profile, result.Error
}

// SetProfileRole updates the global role of a user's profile
func (r *UserRepository) SetProfileRole(userID string, role models.Role) error {
	return database.DB.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("role", role).Error
}
