package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gotodo/internal/api/v1/handlers"
	"gotodo/internal/cache"
	"gotodo/internal/repository"
	"gotodo/internal/token"

	"github.com/gofiber/fiber/v2"
)

// newTestApp builds the full route table against in-memory stores, so the
// request-level tests exercise handlers, middleware, and validation without
// a live Postgres or Redis.
func newTestApp(strictOwnership bool) *fiber.App {
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	h := handlers.New(
		repository.NewMemoryAccountStore(),
		repository.NewMemoryTodoStore(),
		cache.NewMemoryTodoCache(),
		tokens,
		strictOwnership,
	)

	app := fiber.New()
	RegisterRoutes(app, h, tokens)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, url, bearer string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Error encoding request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Error decoding %s %s response: %v", method, url, err)
	}
	return resp.StatusCode, result
}

// registerUser registers an account and returns its token.
func registerUser(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	status, result := doJSON(t, app, "POST", "/api/users", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("Register for %s returned %d: %v", email, status, result)
	}
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data field in register response")
	}
	tok, ok := data["token"].(string)
	if !ok || tok == "" {
		t.Fatalf("Expected token in register response")
	}
	return tok
}
