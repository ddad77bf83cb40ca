package controllers_test

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"folio/config"
	"folio/database"
	authRoutes "folio/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
		SiteName:  "Folio",
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	app = fiber.New()
	authRoutes.SetupAuthRoutes(app)

	os.Exit(m.Run())
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest("POST", url, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSignupAndLogin(t *testing.T) {
	resp := postJSON(t, "/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate email is rejected
	resp = postJSON(t, "/auth/signup", map[string]string{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = postJSON(t, "/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Password hash never leaves the API
	user := data["user"].(map[string]interface{})
	_, exposed := user["Password"]
	assert.False(t, exposed)
}

func TestLoginWrongPassword(t *testing.T) {
	resp := postJSON(t, "/auth/signup", map[string]string{
		"name":     "Grace",
		"email":    "grace@example.com",
		"password": "supersecret",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, "/auth/login", map[string]string{
		"email":    "grace@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	// Short password
	resp := postJSON(t, "/auth/signup", map[string]string{
		"name":     "Short",
		"email":    "short@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Missing email
	resp = postJSON(t, "/auth/signup", map[string]string{
		"name":     "NoEmail",
		"password": "supersecret",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
