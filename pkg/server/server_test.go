package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/docprint/pkg/config"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

const doc = `[
  {"kind": "class", "name": "Store", "location": {"filename": "s.ts", "line": 1, "col": 1},
   "classDef": {"properties": [
     {"name": "size", "tsType": "number"},
     {"name": "cache", "tsType": "Map<string, unknown>", "accessibility": "private"}
   ]}},
  {"kind": "namespace", "name": "Util", "location": {"filename": "u.ts", "line": 1, "col": 1},
   "namespaceDef": {"elements": [
     {"kind": "function", "name": "noop", "location": {"filename": "u.ts", "line": 2, "col": 3}, "functionDef": {}}
   ]}}
]`

func newTestServer() *Server {
	cfg := *config.Default()
	return New(cfg, nil)
}

func post(t *testing.T, s http.Handler, query, body string) *httptest.ResponseRecorder {
	t.Helper()
	target := "/render"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRender(t *testing.T) {
	rec := post(t, newTestServer(), "", doc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "Defined in s.ts:1:1\n\nclass Store\n"))
	assert.Contains(t, body, "  size: number\n")
	assert.NotContains(t, body, "cache")
	assert.Contains(t, body, "  function noop()\n")
	assert.NotContains(t, body, "\x1b[")
}

func TestRenderParams(t *testing.T) {
	s := newTestServer()

	t.Run("private", func(t *testing.T) {
		rec := post(t, s, "private=true", doc)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "  private cache: Map<string, unknown>\n")
	})

	t.Run("filter", func(t *testing.T) {
		rec := post(t, s, "filter=Util.noop", doc)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Defined in u.ts:2:3\n\nfunction noop()\n\n", rec.Body.String())
	})

	t.Run("color", func(t *testing.T) {
		plain := post(t, s, "", doc).Body.String()
		rec := post(t, s, "color=always", doc)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "\x1b[")
		assert.Equal(t, plain, ansi.Strip(rec.Body.String()))
	})

	t.Run("auto color is plain", func(t *testing.T) {
		rec := post(t, s, "color=auto", doc)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "\x1b[")
		assert.Equal(t, post(t, s, "", doc).Body.String(), rec.Body.String())
	})

	t.Run("yaml", func(t *testing.T) {
		rec := post(t, s, "format=yaml", "- kind: import\n  name: x\n  location: {filename: i.ts, line: 1, col: 1}\n")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Defined in i.ts:1:1\n\n\n", rec.Body.String())
	})
}

func TestRenderConfigDefaults(t *testing.T) {
	cfg := *config.Default()
	cfg.Private = true
	cfg.Color = "always"
	s := New(cfg, nil)

	rec := post(t, s, "", doc)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, ansi.Strip(rec.Body.String()), "private cache")
	assert.Contains(t, rec.Body.String(), "\x1b[")

	rec = post(t, s, "private=false&color=never", doc)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "cache")
	assert.NotContains(t, rec.Body.String(), "\x1b[")
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		body   string
		status int
		code   string
	}{
		{"bad color", "color=sometimes", doc, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad format", "format=xml", doc, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad private", "private=maybe", doc, http.StatusBadRequest, "INVALID_INPUT"},
		{"malformed body", "", `[{"kind":`, http.StatusBadRequest, "DECODE"},
		{"invalid node", "", `[{"kind": "widget"}]`, http.StatusBadRequest, "INVALID_INPUT"},
		{"filter misses", "filter=Nope", doc, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, newTestServer(), tt.query, tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.Equal(t, tt.code, payload["code"])
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestRenderRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/render", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRenderRejectsOversizedBody(t *testing.T) {
	s := newTestServer()
	s.maxBody = 16

	rec := post(t, s, "", doc)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "PAYLOAD_TOO_LARGE", payload["code"])
	assert.Contains(t, payload["error"], "16 bytes")
}
