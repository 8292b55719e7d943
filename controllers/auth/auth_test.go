package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	authRoutes "lms/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
		BaseURL:   "http://localhost:5002",
		UploadDir: t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Asha Student",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	resp, body = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	tokenString, _ := data["token"].(string)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "student", claims["role"])
	assert.Equal(t, "Asha Student", claims["name"])
	assert.NotNil(t, claims["userId"])
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	app, _ := setupApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Known User",
		"email":    "known@example.com",
		"password": "secret123",
	})

	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "known@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongPassword := body["message"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	unknownEmail := body["message"].(string)

	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestDuplicateEmailRejected(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "First",
		"email":    "dup@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Second",
		"email":    "dup@example.com",
		"password": "secret456",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Leak Check","email":"leak@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "$2a$") // bcrypt prefix

	resp2, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "leak@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
	_, hasToken := user["verification_token"]
	assert.False(t, hasToken)
}

func TestProfileRequiresToken(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
