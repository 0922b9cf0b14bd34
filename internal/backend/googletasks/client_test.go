package googletasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"taskcal/internal/importer"
	"taskcal/internal/tasklist"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestFetch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tasks/v1/users/@me/lists":
			writeJSON(w, map[string]any{"items": []map[string]any{
				{"id": "L1", "title": "Work"},
				{"id": "L2", "title": "Home"},
			}})
		case "/tasks/v1/lists/L1/tasks":
			assert.Equal(t, "false", r.URL.Query().Get("showCompleted"))
			writeJSON(w, map[string]any{"items": []map[string]any{
				{"id": "a", "title": "Report ", "due": "2024-03-15T00:00:00.000Z"},
				{"id": "b", "title": "Someday"},
			}})
		case "/tasks/v1/lists/L2/tasks":
			writeJSON(w, map[string]any{})
		default:
			http.NotFound(w, r)
		}
	})

	got, err := c.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []importer.RemoteList{
		{Title: "Work", Tasks: []tasklist.Task{{Description: "Report", DueDate: "2024-03-15"}}},
		{Title: "Home"},
	}, got)
}

func TestFetch_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":401,"message":"invalid credentials"}}`, http.StatusUnauthorized)
	})

	_, err := c.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "taskcal login")
}

func TestDueDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-15T00:00:00.000Z", "2024-03-15", true},
		{"2024-02-29", "2024-02-29", true},
		{"", "", false},
		{"2023-02-29T00:00:00Z", "", false},
		{"soon", "", false},
	}
	for _, tt := range tests {
		got, ok := dueDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
