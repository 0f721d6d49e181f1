package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dashboard-theme/internal/auth"
	"dashboard-theme/internal/export"
	"dashboard-theme/internal/theme"
)

func newTestHandler(t *testing.T, opts Options) *Handler {
	t.Helper()
	if opts.CacheMaxAge == 0 {
		opts.CacheMaxAge = 5 * time.Minute
	}
	h, err := NewHandler(theme.Default(), opts)
	require.NoError(t, err)
	return h
}

func do(h http.Handler, method, target string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServeAssets(t *testing.T) {
	h := newTestHandler(t, Options{})

	for _, f := range export.Formats() {
		f := f
		t.Run(string(f), func(t *testing.T) {
			want, err := export.Render(theme.Default(), f)
			require.NoError(t, err)

			w := do(h, http.MethodGet, "/theme."+string(f), nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, export.ContentType(f), w.Header().Get("Content-Type"))
			assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
			assert.NotEmpty(t, w.Header().Get("ETag"))
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, want, w.Body.Bytes())
		})
	}
}

func TestServeJSONDecodesToTheme(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := do(h, http.MethodGet, "/theme.json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got theme.ThemeConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, theme.Default(), got)
}

func TestConditionalGet(t *testing.T) {
	h := newTestHandler(t, Options{})

	first := do(h, http.MethodGet, "/theme.css", nil)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := do(h, http.MethodGet, "/theme.css", func(r *http.Request) {
		r.Header.Set("If-None-Match", etag)
	})
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
}

func TestServeToken(t *testing.T) {
	h := newTestHandler(t, Options{})

	w := do(h, http.MethodGet, "/tokens/colors.primary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "#4fc3f7", w.Body.String())

	w = do(h, http.MethodGet, "/tokens/breakpoints.tablet", nil)
	assert.Equal(t, "768px", w.Body.String())

	w = do(h, http.MethodGet, "/tokens/colors.nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutingEdges(t *testing.T) {
	h := newTestHandler(t, Options{AllowedOrigin: "https://dash.example.com"})

	w := do(h, http.MethodOptions, "/theme.css", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://dash.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(h, http.MethodPost, "/theme.json", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(h, http.MethodGet, "/theme.toml", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t, Options{Limiter: auth.NewRateLimiter(60)})

	for i := 0; i < 10; i++ {
		w := do(h, http.MethodGet, "/theme.css", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
	w := do(h, http.MethodGet, "/theme.css", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAllowlist(t *testing.T) {
	allow, err := auth.NewAllowlist([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	h := newTestHandler(t, Options{Allowlist: allow})
	w := do(h, http.MethodGet, "/theme.css", nil) // httptest uses 192.0.2.1
	assert.Equal(t, http.StatusForbidden, w.Code)

	spoofed := do(h, http.MethodGet, "/theme.css", func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "10.1.1.1")
	})
	assert.Equal(t, http.StatusForbidden, spoofed.Code, "proxy headers are ignored unless trusted")

	trusted := newTestHandler(t, Options{Allowlist: allow, TrustProxyHeaders: true})
	w = do(trusted, http.MethodGet, "/theme.css", func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "10.1.1.1, 192.0.2.1")
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyGate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("dash-key"), bcrypt.MinCost)
	require.NoError(t, err)
	data, err := json.Marshal(auth.KeysConfig{Keys: []auth.Key{{Name: "dashboard", KeyHash: string(hash), Enabled: true}}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "keys.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	keys, err := auth.NewKeyStore(path)
	require.NoError(t, err)
	h := newTestHandler(t, Options{Keys: keys})

	w := do(h, http.MethodGet, "/theme.css", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(h, http.MethodGet, "/theme.css", func(r *http.Request) {
		r.Header.Set("X-API-Key", "wrong")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(h, http.MethodGet, "/theme.css", func(r *http.Request) {
		r.Header.Set("X-API-Key", "dash-key")
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodGet, "/tokens/colors.primary?key=dash-key", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code, "health checks bypass the key gate")
}

func TestRouteName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/theme.css":            "theme.css",
		"/theme.js":             "theme.js",
		"/theme.yml":            "other",
		"/tokens/colors.border": "tokens",
		"/healthz":              "healthz",
		"/":                     "other",
	}
	for path, want := range tests {
		assert.Equal(t, want, routeName(path), path)
	}
}

func TestServerServeAndShutdown(t *testing.T) {
	h := newTestHandler(t, Options{Limiter: auth.NewRateLimiter(600)})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	srv := NewServer(ln.Addr().String(), h)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/tokens/colors.warning")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "#ffae42", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
