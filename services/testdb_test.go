package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/planvault/database"
	"github.com/planvault/models"
)

// setupTestDB points the global connection at a fresh in-memory database for
// the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func createUser(t *testing.T, email string, role models.Role) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "irrelevant"}
	require.NoError(t, database.DB.Create(&user).Error)
	profile := models.UserProfile{UserID: user.ID, Role: role}
	require.NoError(t, database.DB.Create(&profile).Error)
	return user
}

func createProject(t *testing.T, name string) models.Project {
	t.Helper()
	project := models.Project{Name: name}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}

func addMember(t *testing.T, projectID, userID string, canEdit *bool) models.Membership {
	t.Helper()
	membership := models.Membership{ProjectID: projectID, UserID: userID, CanEdit: canEdit}
	require.NoError(t, database.DB.Create(&membership).Error)
	return membership
}

func recordCount(projectID, tableKey string, count *int64) error {
	return database.DB.Model(&models.Record{}).
		Where("project_id = ? AND table_key = ?", projectID, tableKey).
		Count(count).Error
}

func boolPtr(v bool) *bool { return &v }
