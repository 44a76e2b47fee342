// Package testutil builds throwaway databases, routers and requests for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"starwars_api/internal/config"
	"starwars_api/internal/database"
	"starwars_api/internal/models"
	"starwars_api/internal/responses"
	"starwars_api/internal/utils"
)

// TestSecret signs the tokens minted by Token.
const TestSecret = "test-access-secret"

// SetupTestDB opens a fresh, migrated SQLite database in a temp dir.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(path)), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db, zerolog.Nop()), "migrate test database")
	return db
}

// GetTestConfig returns a standard test configuration.
func GetTestConfig() *config.Config {
	return &config.Config{
		Port:               3000,
		SQLitePath:         filepath.Join("testdata", "unused.db"),
		AccessTokenSecret:  TestSecret,
		AccessTokenTTL:     time.Hour,
		CORSAllowedOrigins: []string{"*"},
		LogLevel:           "error",
		LogFormat:          "json",
		GinMode:            gin.TestMode,
	}
}

// CreateTestUser inserts an active user with the given email.
func CreateTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Password: "pw", IsActive: true}
	require.NoError(t, db.Create(user).Error, "create test user")
	return user
}

func CreateTestPeople(t *testing.T, db *gorm.DB, name string) *models.People {
	t.Helper()

	person := &models.People{Name: name, Height: "172", Gender: "male"}
	require.NoError(t, db.Create(person).Error, "create test people")
	return person
}

func CreateTestPlanet(t *testing.T, db *gorm.DB, name string) *models.Planet {
	t.Helper()

	planet := &models.Planet{Name: name, Population: "200000", Terrain: "desert"}
	require.NoError(t, db.Create(planet).Error, "create test planet")
	return planet
}

// CreateTestFavorite bookmarks target for userID directly in the database.
func CreateTestFavorite(t *testing.T, db *gorm.DB, userID uint, target models.FavoriteTarget) *models.Favorite {
	t.Helper()

	fav, err := models.NewFavorite(userID, target)
	require.NoError(t, err)
	require.NoError(t, db.Create(fav).Error, "create test favorite")
	return fav
}

// Token mints a bearer token for userID signed with TestSecret.
func Token(t *testing.T, userID uint) string {
	t.Helper()

	token, err := utils.GenerateAccessToken(userID, time.Hour, []byte(TestSecret))
	require.NoError(t, err)
	return token
}

// AuthHeader returns the Authorization header for userID.
func AuthHeader(t *testing.T, userID uint) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + Token(t, userID)}
}

// MakeRequest creates an HTTP test request. A string body is sent verbatim.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Do serves req through handler and returns the recorder.
func Do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equalf(t, expected, w.Code, "unexpected status, body: %s", w.Body.String())
}

// DecodeEnvelope decodes the response envelope, unmarshalling data into v when v
// is non-nil.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, v interface{}) responses.APIResponse {
	t.Helper()

	var raw struct {
		responses.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), "decode body: %s", w.Body.String())
	if v != nil {
		require.NoError(t, json.Unmarshal(raw.Data, v), "decode data: %s", string(raw.Data))
	}
	env := raw.APIResponse
	env.Data = raw.Data
	return env
}
