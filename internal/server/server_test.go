package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vowsync/vowsync/internal/auth"
	"github.com/vowsync/vowsync/internal/storage/sqlite"
)

type testServer struct {
	*httptest.Server
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := sqlite.New(filepath.Join(t.TempDir(), "vowsync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := New(store, auth.NewJWTManager("test-secret", time.Hour), nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return &testServer{ts}
}

// do sends a JSON request and decodes the JSON response into a generic map.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, ts.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func registerAndLogin(t *testing.T, ts *testServer, email string) string {
	t.Helper()
	creds := map[string]string{"email": email, "password": "sup3r-secret"}

	status, _ := ts.do(t, http.MethodPost, "/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.do(t, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, status)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response should carry a token")
	return token
}

func TestHealthz(t *testing.T) {
	ts := setupTestServer(t)
	status, body := ts.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestAuthFlow(t *testing.T) {
	ts := setupTestServer(t)
	creds := map[string]string{"email": "ada@example.com", "password": "sup3r-secret"}

	t.Run("weak password rejected", func(t *testing.T) {
		status, body := ts.do(t, http.MethodPost, "/auth/register", "",
			map[string]string{"email": "weak@example.com", "password": "short"})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body["error"], "8 characters")
	})

	t.Run("register and login", func(t *testing.T) {
		status, body := ts.do(t, http.MethodPost, "/auth/register", "", creds)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "ada@example.com", body["email"])

		status, body = ts.do(t, http.MethodPost, "/auth/login", "", creds)
		require.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/auth/register", "", creds)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/auth/login", "",
			map[string]string{"email": "ada@example.com", "password": "wrong-pass"})
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestRequireAuth(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.do(t, http.MethodGet, "/todos/todos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = ts.do(t, http.MethodGet, "/todos/todos", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestTodoEndpoints(t *testing.T) {
	ts := setupTestServer(t)
	token := registerAndLogin(t, ts, "ada@example.com")

	status, body := ts.do(t, http.MethodGet, "/todos/todos", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["todos"])

	status, body = ts.do(t, http.MethodPost, "/todos/todos", token,
		map[string]any{"title": "book venue", "dueDate": "2026-10-03 14:00:00"})
	require.Equal(t, http.StatusCreated, status)
	created := body["todo"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, float64(0), created["completed"], "completed rides the wire as 0/1")
	assert.Equal(t, "2026-10-03 14:00:00", created["due_date"])

	t.Run("title required", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/todos/todos", token, map[string]any{"title": ""})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("complete toggles the flag", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPatch, "/todos/todos/"+id+"/complete", token, nil)
		require.Equal(t, http.StatusOK, status)

		_, body := ts.do(t, http.MethodGet, "/todos/todos", token, nil)
		todos := body["todos"].([]any)
		require.Len(t, todos, 1)
		assert.Equal(t, float64(1), todos[0].(map[string]any)["completed"])
	})

	t.Run("clear due date", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPatch, "/todos/todos/"+id+"/due-date", token,
			map[string]any{"dueDate": nil})
		require.Equal(t, http.StatusOK, status)

		_, body := ts.do(t, http.MethodGet, "/todos/todos", token, nil)
		todo := body["todos"].([]any)[0].(map[string]any)
		assert.NotContains(t, todo, "due_date")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodDelete, "/todos/todos/missing", token, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("delete", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodDelete, "/todos/todos/"+id, token, nil)
		require.Equal(t, http.StatusOK, status)

		_, body := ts.do(t, http.MethodGet, "/todos/todos", token, nil)
		assert.Empty(t, body["todos"])
	})
}

func TestBudgetEndpoints(t *testing.T) {
	ts := setupTestServer(t)
	token := registerAndLogin(t, ts, "ada@example.com")

	status, body := ts.do(t, http.MethodGet, "/budgetPlanner/predefined-categories", token, nil)
	require.Equal(t, http.StatusOK, status)
	predefined := body["categories"].([]any)
	require.NotEmpty(t, predefined)
	first := predefined[0].(map[string]any)
	predefinedID := int64(first["id"].(float64))

	status, body = ts.do(t, http.MethodPost, "/budgetPlanner/categories", token,
		map[string]any{"name": "Venue", "estimatedBudget": 5000.0, "predefinedCategoryId": predefinedID})
	require.Equal(t, http.StatusCreated, status)
	cat := body["category"].(map[string]any)
	catID := int64(cat["id"].(float64))
	assert.Equal(t, float64(predefinedID), cat["predefined_category_id"])

	t.Run("negative budget rejected", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/budgetPlanner/categories", token,
			map[string]any{"name": "Bad", "estimatedBudget": -1.0})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	status, body = ts.do(t, http.MethodPost, "/budgetPlanner/expenses", token,
		map[string]any{"categoryId": catID, "title": "deposit", "amount": 1200.0})
	require.Equal(t, http.StatusCreated, status)
	exp := body["expense"].(map[string]any)
	assert.Equal(t, "deposit", exp["title"])
	assert.Equal(t, float64(catID), exp["category_id"])

	status, body = ts.do(t, http.MethodGet, fmt.Sprintf("/budgetPlanner/expenses/%d", catID), token, nil)
	require.Equal(t, http.StatusOK, status)
	expenses := body["expenses"].([]any)
	require.Len(t, expenses, 1)
	assert.Equal(t, float64(1200), expenses[0].(map[string]any)["amount"])

	t.Run("expenses scoped to owner", func(t *testing.T) {
		otherToken := registerAndLogin(t, ts, "eve@example.com")
		status, _ := ts.do(t, http.MethodGet, fmt.Sprintf("/budgetPlanner/expenses/%d", catID), otherToken, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestGuestEndpoints(t *testing.T) {
	ts := setupTestServer(t)
	token := registerAndLogin(t, ts, "ada@example.com")

	status, body := ts.do(t, http.MethodPost, "/guests/add-guest", token,
		map[string]any{"name": "Grace", "email": "grace@example.com", "status": "accepted"})
	require.Equal(t, http.StatusCreated, status)
	guest := body["guest"].(map[string]any)
	assert.NotEmpty(t, guest["id"])
	assert.Equal(t, "accepted", guest["status"])
	assert.Equal(t, "grace@example.com", guest["email"])

	t.Run("name required", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/guests/add-guest", token, map[string]any{"name": ""})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("unknown status normalized", func(t *testing.T) {
		status, body := ts.do(t, http.MethodPost, "/guests/add-guest", token,
			map[string]any{"name": "Linus", "status": "maybe"})
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "invited", body["guest"].(map[string]any)["status"])
	})

	status, body = ts.do(t, http.MethodGet, "/guests/guests", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["guests"], 2)
}

func TestWeddingDetailsEndpoints(t *testing.T) {
	ts := setupTestServer(t)
	token := registerAndLogin(t, ts, "ada@example.com")

	t.Run("empty list before onboarding", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/weddingDetails/wedding-details", token, nil)
		require.Equal(t, http.StatusOK, status)
		list, ok := body["weddingDetails"].([]any)
		require.True(t, ok, "pre-onboarding response should be a list")
		assert.Empty(t, list)
	})

	t.Run("at least one partner name required", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodPost, "/weddingDetails/wedding-details", token,
			map[string]any{"weddingDate": "2026-10-03"})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	details := map[string]any{
		"brideName": "Ada", "groomName": "Alan",
		"weddingDate": "2026-10-03", "time": "16:00:00",
		"location": "Lisbon", "venue": "Rosewood Manor",
		"guestCount": 80.0, "dressCode": "formal",
	}
	status, body := ts.do(t, http.MethodPost, "/weddingDetails/wedding-details", token, details)
	require.Equal(t, http.StatusOK, status)
	saved := body["weddingDetails"].(map[string]any)
	assert.Equal(t, "Ada", saved["bride_name"])
	assert.Equal(t, "Rosewood Manor", saved["venue"])

	t.Run("fetch after onboarding", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/weddingDetails/wedding-details", token, nil)
		require.Equal(t, http.StatusOK, status)
		list := body["weddingDetails"].([]any)
		require.Len(t, list, 1)
		record := list[0].(map[string]any)
		assert.Equal(t, "Lisbon", record["location"])
		assert.Equal(t, float64(80), record["guest_count"])
	})
}

func TestSearchVendorsEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("query required", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodGet, "/search-vendors?location=Portland", "", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("returns a bare array", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/search-vendors?query=wedding+venues&location=Portland", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var vendors []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&vendors))
		require.NotEmpty(t, vendors)
		for _, v := range vendors {
			assert.Equal(t, "Portland", v["location"])
			assert.NotEmpty(t, v["name"])
		}
	})
}
