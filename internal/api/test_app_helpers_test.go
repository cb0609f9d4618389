package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/liftlog/internal/db"
)

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "liftlog-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", false, 0)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler.repositories
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    email,
		"password": "StrongPass1",
	}, http.StatusCreated)

	payload := struct {
		UserID string `json:"userId"`
	}{}
	if err := json.Unmarshal([]byte(body.body), &payload); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if payload.UserID == "" {
		t.Fatal("expected user id in register response")
	}
	if body.authCookie == "" {
		t.Fatal("expected auth cookie on register")
	}
	return body.authCookie
}

type testResponse struct {
	status     int
	body       string
	authCookie string
	header     http.Header
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any, expectedStatus int) testResponse {
	t.Helper()

	var requestBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, requestBody)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	rawBody, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d (body: %s)", method, path, expectedStatus, response.StatusCode, rawBody)
	}

	cookieValue := ""
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			cookieValue = cookie.Value
		}
	}

	return testResponse{
		status:     response.StatusCode,
		body:       string(rawBody),
		authCookie: cookieValue,
		header:     response.Header,
	}
}
