//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	notedb "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/notekeeper-backend/internal/auth"
	"github.com/heartmarshall/notekeeper-backend/internal/config"
	authsvc "github.com/heartmarshall/notekeeper-backend/internal/service/auth"
	notesvc "github.com/heartmarshall/notekeeper-backend/internal/service/note"
	"github.com/heartmarshall/notekeeper-backend/internal/transport/middleware"
	"github.com/heartmarshall/notekeeper-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Notes  *notesvc.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, userrepo.New(pool), jwtMgr, authCfg)
	noteService := notesvc.NewService(logger, notedb.New(pool), config.NotesConfig{
		TrashRetentionDays: 30,
		ExportMaxNotes:     1000,
		MaxSearchLength:    200,
	})

	handler := rest.NewRouter(rest.RouterConfig{
		Notes:  rest.NewNoteHandler(noteService, logger),
		Auth:   rest.NewAuthHandler(authService, logger),
		Health: rest.NewHealthHandler(pool, config.DriverPostgres, "test-version"),
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.ClientIP(false),
			middleware.Recovery(logger),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins:   "*",
				AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
				AllowedHeaders:   "Authorization,Content-Type",
				AllowCredentials: true,
				MaxAge:           86400,
			}),
			middleware.BodyLimit(1 << 20),
		},
		Identity: middleware.Auth(authService),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Notes:  noteService,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// call sends a request and returns status, headers and raw body.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, http.Header, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, raw
}

// callJSON sends a request and decodes a JSON response into out.
func (ts *testServer) callJSON(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	status, _, raw := ts.call(t, method, path, token, body)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return status
}

type noteJSON struct {
	ID        string     `json:"id"`
	LegacyID  string     `json:"_id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Pinned    bool       `json:"pinned"`
	Color     string     `json:"color"`
	Archived  bool       `json:"archived"`
	Trashed   bool       `json:"trashed"`
	DeletedAt *time.Time `json:"deletedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

type authJSON struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// registerUser signs up a fresh user through the API and returns its token.
func registerUser(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8])
	var res authJSON
	status := ts.callJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	}, &res)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, res.Token)

	return res.Token, uuid.MustParse(res.User.ID)
}

// createNote creates a note through the API.
func createNote(t *testing.T, ts *testServer, token, title, content, color string) noteJSON {
	t.Helper()

	var n noteJSON
	status := ts.callJSON(t, http.MethodPost, "/api/notes", token, map[string]string{
		"title":   title,
		"content": content,
		"color":   color,
	}, &n)
	require.Equal(t, http.StatusCreated, status)
	return n
}

func listNotes(t *testing.T, ts *testServer, token, query string) []noteJSON {
	t.Helper()

	var notes []noteJSON
	status := ts.callJSON(t, http.MethodGet, "/api/notes"+query, token, nil, &notes)
	require.Equal(t, http.StatusOK, status)
	return notes
}

func titles(notes []noteJSON) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}
