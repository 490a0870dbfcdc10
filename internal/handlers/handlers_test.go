package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/mentordesk/mentordesk/db"
	"github.com/mentordesk/mentordesk/internal/auth"
	"github.com/mentordesk/mentordesk/internal/crud"
	"github.com/mentordesk/mentordesk/internal/models"
	"github.com/mentordesk/mentordesk/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTest wires the real router against a fresh in-memory database.
// Handlers go through the package-level db.DB, so tests in this package
// must not run in parallel.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	// A second connection would get its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gormDB.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Mentor{},
		&models.Questionnaire{},
	))

	db.DB = gormDB

	gin.SetMode(gin.TestMode)
	return router.NewRouter([]string{"http://localhost:3000"})
}

func createTestUser(t *testing.T, email string, superuser bool) (*models.User, string) {
	t.Helper()

	user, err := crud.CreateUser(db.DB, crud.CreateUserParams{
		Email:       email,
		Password:    "password123",
		FullName:    "Test User",
		IsSuperuser: superuser,
	})
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)

	return user, token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
