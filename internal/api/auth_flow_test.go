package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "taken@example.com")

	performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "taken@example.com",
		"password": "StrongPass1",
	}, http.StatusConflict)

	// Address comparison is case-insensitive.
	performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "TAKEN@example.com",
		"password": "StrongPass1",
	}, http.StatusConflict)
}

func TestRegisterRejectsWeakPasswords(t *testing.T) {
	app, _ := newTestApp(t)

	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"email":    "weak@example.com",
			"password": password,
		}, http.StatusBadRequest)
	}
}

func TestLoginFlow(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "login@example.com")

	performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "login@example.com",
		"password": "WrongPass1",
	}, http.StatusUnauthorized)

	performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "StrongPass1",
	}, http.StatusUnauthorized)

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "login@example.com",
		"password": "StrongPass1",
	}, http.StatusOK)
	if response.authCookie == "" {
		t.Fatal("expected auth cookie on login")
	}

	// The fresh cookie works against a protected route.
	performJSON(t, app, http.MethodGet, "/api/exercises", response.authCookie, nil, http.StatusOK)

	performJSON(t, app, http.MethodPost, "/api/auth/logout", response.authCookie, nil, http.StatusOK)
}

func TestExercisesListIncludesLibrary(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "browser@example.com")

	response := performJSON(t, app, http.MethodGet, "/api/exercises", cookie, nil, http.StatusOK)
	exercises := []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}{}
	if err := json.Unmarshal([]byte(response.body), &exercises); err != nil {
		t.Fatalf("decode exercises: %v", err)
	}

	names := make(map[string]bool, len(exercises))
	for _, exercise := range exercises {
		names[exercise.Name] = true
	}
	for _, expected := range []string{"Bench Press", "Squat", "Deadlift"} {
		if !names[expected] {
			t.Fatalf("expected %q in the library, got %d entries", expected, len(exercises))
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	performJSON(t, app, http.MethodGet, "/healthz", "", nil, http.StatusOK)
}
