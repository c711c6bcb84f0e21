package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTodos_Unauthenticated(t *testing.T) {
	app := newTestApp(false)

	status, _ := doJSON(t, app, "GET", "/api/todos", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "POST", "/api/todos", "", map[string]string{"todo": "buy milk"})
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestCreateTodo_EmptyText(t *testing.T) {
	app := newTestApp(false)
	tok := registerUser(t, app, "Ann", "ann@x.com", "secret1")

	status, _ := doJSON(t, app, "POST", "/api/todos", tok, map[string]string{"todo": ""})
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/api/todos", tok, map[string]string{})
	require.Equal(t, http.StatusBadRequest, status)
}

func TestListTodos_OnlyOwn(t *testing.T) {
	app := newTestApp(false)
	annTok := registerUser(t, app, "Ann", "ann@x.com", "secret1")
	bobTok := registerUser(t, app, "Bob", "bob@x.com", "secret2")

	for _, text := range []string{"ann one", "ann two"} {
		status, _ := doJSON(t, app, "POST", "/api/todos", annTok, map[string]string{"todo": text})
		require.Equal(t, http.StatusOK, status)
	}
	status, _ := doJSON(t, app, "POST", "/api/todos", bobTok, map[string]string{"todo": "bob's secret"})
	require.Equal(t, http.StatusOK, status)

	status, result := doJSON(t, app, "GET", "/api/todos", annTok, nil)
	require.Equal(t, http.StatusOK, status)

	data, ok := result["data"].([]interface{})
	require.True(t, ok, "Expected data array in list response")
	require.Len(t, data, 2)
	for _, item := range data {
		todo := item.(map[string]interface{})
		require.NotEqual(t, "bob's secret", todo["todo"])
	}

	// Newest first.
	first := data[0].(map[string]interface{})
	require.Equal(t, "ann two", first["todo"])
}

func TestGetTodo_DefaultAllowsCrossAccountRead(t *testing.T) {
	app := newTestApp(false)
	annTok := registerUser(t, app, "Ann", "ann@x.com", "secret1")
	bobTok := registerUser(t, app, "Bob", "bob@x.com", "secret2")

	_, result := doJSON(t, app, "POST", "/api/todos", annTok, map[string]string{"todo": "ann's todo"})
	id := todoID(t, result)

	// Reference behavior: any authenticated account can read any todo by id.
	status, _ := doJSON(t, app, "GET", fmt.Sprintf("/api/todos/%d", id), bobTok, nil)
	require.Equal(t, http.StatusOK, status)
}

func TestGetTodo_StrictOwnership(t *testing.T) {
	app := newTestApp(true)
	annTok := registerUser(t, app, "Ann", "ann@x.com", "secret1")
	bobTok := registerUser(t, app, "Bob", "bob@x.com", "secret2")

	_, result := doJSON(t, app, "POST", "/api/todos", annTok, map[string]string{"todo": "ann's todo"})
	id := todoID(t, result)

	status, _ := doJSON(t, app, "GET", fmt.Sprintf("/api/todos/%d", id), bobTok, nil)
	require.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/todos/%d", id), annTok, nil)
	require.Equal(t, http.StatusOK, status)
}

func TestUpdateTodo_NonOwnerForbidden(t *testing.T) {
	app := newTestApp(false)
	annTok := registerUser(t, app, "Ann", "ann@x.com", "secret1")
	bobTok := registerUser(t, app, "Bob", "bob@x.com", "secret2")

	_, result := doJSON(t, app, "POST", "/api/todos", annTok, map[string]string{"todo": "ann's todo"})
	id := todoID(t, result)

	// Forbidden, not 404: the record exists, the caller just doesn't own it.
	status, _ := doJSON(t, app, "PUT", fmt.Sprintf("/api/todos/%d", id), bobTok, map[string]string{"todo": "hijacked"})
	require.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/todos/%d", id), bobTok, nil)
	require.Equal(t, http.StatusForbidden, status)
}

func TestUpdateTodo_EmptyTextKeepsCurrent(t *testing.T) {
	app := newTestApp(false)
	tok := registerUser(t, app, "Ann", "ann@x.com", "secret1")

	_, result := doJSON(t, app, "POST", "/api/todos", tok, map[string]string{"todo": "buy milk"})
	id := todoID(t, result)

	status, result := doJSON(t, app, "PUT", fmt.Sprintf("/api/todos/%d", id), tok, map[string]string{"todo": ""})
	require.Equal(t, http.StatusOK, status)

	data := result["data"].(map[string]interface{})
	require.Equal(t, "buy milk", data["todo"])
}

func TestDeleteTodo_RepeatedNotFound(t *testing.T) {
	app := newTestApp(false)
	tok := registerUser(t, app, "Ann", "ann@x.com", "secret1")

	status, _ := doJSON(t, app, "DELETE", "/api/todos/9999", tok, nil)
	require.Equal(t, http.StatusNotFound, status)

	// Still 404 on repeat, never a different failure.
	status, _ = doJSON(t, app, "DELETE", "/api/todos/9999", tok, nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestTodo_InvalidID(t *testing.T) {
	app := newTestApp(false)
	tok := registerUser(t, app, "Ann", "ann@x.com", "secret1")

	status, _ := doJSON(t, app, "GET", "/api/todos/abc", tok, nil)
	require.Equal(t, http.StatusBadRequest, status)
}

// TestTodoLifecycle walks the whole surface: register, failed login, create,
// list, update, delete, and the final 404 on re-fetch.
func TestTodoLifecycle(t *testing.T) {
	app := newTestApp(false)

	tok := registerUser(t, app, "Ann", "ann@x.com", "secret1")

	status, _ := doJSON(t, app, "POST", "/api/auth", "", map[string]string{
		"email":    "ann@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, result := doJSON(t, app, "POST", "/api/todos", tok, map[string]string{"todo": "buy milk"})
	require.Equal(t, http.StatusOK, status)
	created := result["data"].(map[string]interface{})
	require.Equal(t, "buy milk", created["todo"])
	id := todoID(t, result)

	status, result = doJSON(t, app, "GET", "/api/todos", tok, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, result["data"].([]interface{}), 1)

	status, result = doJSON(t, app, "PUT", fmt.Sprintf("/api/todos/%d", id), tok, map[string]string{"todo": "buy oat milk"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "buy oat milk", result["data"].(map[string]interface{})["todo"])

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/todos/%d", id), tok, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/todos/%d", id), tok, nil)
	require.Equal(t, http.StatusNotFound, status)
}

func todoID(t *testing.T, result map[string]interface{}) int {
	t.Helper()

	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data field with created todo, got %v", result)
	}
	id, ok := data["id"].(float64)
	if !ok {
		t.Fatalf("Expected numeric id in todo response, got %v", data)
	}
	return int(id)
}
