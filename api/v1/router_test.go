package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/planvault/cache"
	"github.com/planvault/database"
	"github.com/planvault/models"
	"github.com/planvault/services"
)

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

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

	router := gin.New()
	api := router.Group("/api/v1")
	RegisterRoutes(api, services.NewSectionService(cache.NewMemoryCache(64, time.Minute)))
	return router
}

func seedMember(t *testing.T, role models.Role, canEdit *bool) (models.User, models.Project, string) {
	t.Helper()
	user := models.User{Email: string(role) + "@example.com", Password: "irrelevant"}
	require.NoError(t, database.DB.Create(&user).Error)
	require.NoError(t, database.DB.Create(&models.UserProfile{UserID: user.ID, Role: role}).Error)

	project := models.Project{Name: "alpha-" + string(role)}
	require.NoError(t, database.DB.Create(&project).Error)
	require.NoError(t, database.DB.Create(&models.Membership{
		ProjectID: project.ID,
		UserID:    user.ID,
		CanEdit:   canEdit,
	}).Error)

	token, _, err := services.GenerateToken(user.ID, user.Email, string(role))
	require.NoError(t, err)
	return user, project, token
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	router := setupTestAPI(t)
	rec := doJSON(router, http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSectionRoutesRequireAuth(t *testing.T) {
	router := setupTestAPI(t)
	rec := doJSON(router, http.MethodGet, "/api/v1/projects/p1/sections/deliverables", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSectionDataShape(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleViewer, nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/projects/"+project.ID+"/sections/deliverables", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Rows      []map[string]any `json:"rows"`
		Fields    []map[string]any `json:"fields"`
		Singleton bool             `json:"singleton"`
		Table     string           `json:"table"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "deliverables", body.Table)
	require.False(t, body.Singleton)
	require.Len(t, body.Rows, 15)
	require.Equal(t, "sl_no", body.Fields[0]["name"])
	require.Equal(t, "Sl No", body.Fields[0]["label"])
	require.Equal(t, "input", body.Fields[0]["widget"])
}

func TestGetSectionDataUnknownProjectAndTable(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleViewer, nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/projects/no-such/sections/deliverables", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/projects/"+project.ID+"/sections/no-such", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNonMemberIsForbidden(t *testing.T) {
	router := setupTestAPI(t)
	_, project, _ := seedMember(t, models.RoleViewer, nil)
	_, _, outsiderToken := seedMember(t, models.RoleEditor, nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/projects/"+project.ID+"/sections/deliverables", outsiderToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateRowFlow(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleEditor, nil)
	base := "/api/v1/projects/" + project.ID + "/sections/assumptions"

	rec := doJSON(router, http.MethodPost, base+"/rows", token, map[string]any{
		"sl_no":             1,
		"brief_description": "x",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		Success bool           `json:"success"`
		Row     map[string]any `json:"row"`
		ID      any            `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.NotNil(t, created.ID)
	require.Equal(t, "x", created.Row["brief_description"])

	// the read path reflects the write immediately
	rec = doJSON(router, http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Rows []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Rows, 1)
	require.Equal(t, "x", listed.Rows[0]["brief_description"])
}

func TestCreateRowValidationErrors(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleEditor, nil)

	rec := doJSON(router, http.MethodPost, "/api/v1/projects/"+project.ID+"/sections/assumptions/rows", token, map[string]any{
		"sl_no": "NaN",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, []string{"Enter a whole number."}, body.Errors["sl_no"])
	require.Equal(t, []string{"This field is required."}, body.Errors["brief_description"])
}

func TestViewerCannotMutate(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleViewer, nil)

	rec := doJSON(router, http.MethodPost, "/api/v1/projects/"+project.ID+"/sections/assumptions/rows", token, map[string]any{
		"sl_no":             1,
		"brief_description": "x",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExplicitDenialBeatsGlobalEditor(t *testing.T) {
	router := setupTestAPI(t)
	denied := false
	_, project, token := seedMember(t, models.RoleEditor, &denied)

	rec := doJSON(router, http.MethodPost, "/api/v1/projects/"+project.ID+"/sections/assumptions/rows", token, map[string]any{
		"sl_no":             1,
		"brief_description": "x",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSingletonUpdateWithoutRowID(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleEditor, nil)
	base := "/api/v1/projects/" + project.ID + "/sections/product-overview"

	rec := doJSON(router, http.MethodPut, base+"/rows", token, map[string]any{"content": "v1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodPut, base+"/rows", token, map[string]any{"content": "v2"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, base, token, nil)
	var body struct {
		Rows      []map[string]any `json:"rows"`
		Singleton bool             `json:"singleton"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Singleton)
	require.Len(t, body.Rows, 1)
	require.Equal(t, "v2", body.Rows[0]["content"])
}

func TestUpdateWithoutRowIDIsRejected(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleEditor, nil)

	rec := doJSON(router, http.MethodPut, "/api/v1/projects/"+project.ID+"/sections/assumptions/rows", token, map[string]any{
		"sl_no":             1,
		"brief_description": "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedRowIDIsNotFound(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleEditor, nil)
	base := "/api/v1/projects/" + project.ID + "/sections/assumptions"

	rec := doJSON(router, http.MethodPut, base+"/rows/abc", token, map[string]any{
		"sl_no":             1,
		"brief_description": "x",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(router, http.MethodDelete, base+"/rows/abc", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRowFlow(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleEditor, nil)
	base := "/api/v1/projects/" + project.ID + "/sections/assumptions"

	rec := doJSON(router, http.MethodPost, base+"/rows", token, map[string]any{
		"sl_no":             1,
		"brief_description": "x",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		ID json.Number `json:"id"`
	}
	dec := json.NewDecoder(bytes.NewReader(rec.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&created))

	rec = doJSON(router, http.MethodDelete, fmt.Sprintf("%s/rows/%s", base, created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, base, token, nil)
	var listed struct {
		Rows []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Empty(t, listed.Rows)
}

func TestSectionsNavEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	_, _, token := seedMember(t, models.RoleViewer, nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/sections", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Key    string `json:"key"`
			Tables []struct {
				Key string `json:"key"`
			} `json:"tables"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 13)
	require.Equal(t, "m1", body.Data[0].Key)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router := setupTestAPI(t)
	_, project, editorToken := seedMember(t, models.RoleEditor, nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/admin/memberships?projectId="+project.ID, editorToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	_, _, adminToken := seedMember(t, models.RoleAdmin, nil)
	rec = doJSON(router, http.MethodGet, "/api/v1/admin/memberships?projectId="+project.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectDetailIncludesNavAndCanEdit(t *testing.T) {
	router := setupTestAPI(t)
	_, project, token := seedMember(t, models.RoleEditor, nil)

	rec := doJSON(router, http.MethodGet, "/api/v1/projects/"+project.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Project  map[string]any   `json:"project"`
			Sections []map[string]any `json:"sections"`
			CanEdit  bool             `json:"canEdit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, project.ID, body.Data.Project["id"])
	require.Len(t, body.Data.Sections, 13)
	require.True(t, body.Data.CanEdit)
}
