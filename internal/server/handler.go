package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dashboard-theme/internal/auth"
	"dashboard-theme/internal/export"
	"dashboard-theme/internal/theme"
	"dashboard-theme/internal/ui"
)

// Options configures the theme handler. Nil Keys, Allowlist or Limiter
// disable the corresponding check.
type Options struct {
	CacheMaxAge       time.Duration
	AllowedOrigin     string
	TrustProxyHeaders bool

	Keys      *auth.KeyStore
	Allowlist *auth.Allowlist
	Limiter   *auth.RateLimiter
}

// asset is one pre-rendered export.
type asset struct {
	name        string
	contentType string
	body        []byte
	etag        string
}

// Handler serves the read-only theme to dashboard clients.
type Handler struct {
	theme  theme.ThemeConfig
	opts   Options
	assets map[export.Format]*asset
	mux    *http.ServeMux
}

// NewHandler renders every export format once and builds the route table.
func NewHandler(t theme.ThemeConfig, opts Options) (*Handler, error) {
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}

	h := &Handler{
		theme:  t,
		opts:   opts,
		assets: make(map[export.Format]*asset),
		mux:    http.NewServeMux(),
	}

	for _, f := range export.Formats() {
		body, err := export.Render(t, f)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		sum := sha256.Sum256(body)
		a := &asset{
			name:        "theme." + string(f),
			contentType: export.ContentType(f),
			body:        body,
			etag:        `"` + hex.EncodeToString(sum[:8]) + `"`,
		}
		h.assets[f] = a
		h.mux.Handle("GET /"+a.name, h.serveAsset(a))
	}

	h.mux.HandleFunc("GET /tokens/{path}", h.serveToken)
	h.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	return h, nil
}

// ServeHTTP applies CORS, access control and rate limiting, then routes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	route := routeName(r.URL.Path)
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	defer func() {
		MetricRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		MetricBytesServed.WithLabelValues(route).Add(float64(rec.bytes))
		MetricRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}()

	h.setCORS(rec)
	if r.Method == http.MethodOptions {
		rec.WriteHeader(http.StatusNoContent)
		return
	}

	clientIP := h.clientIP(r)

	if !h.opts.Allowlist.Allowed(clientIP) {
		h.reject(rec, "forbidden", http.StatusForbidden, "Forbidden", clientIP)
		return
	}

	if !h.opts.Limiter.Allow(clientIP) {
		h.reject(rec, "rate_limited", http.StatusTooManyRequests, "Too Many Requests", clientIP)
		return
	}

	if h.opts.Keys != nil && route != "healthz" {
		if _, ok := h.opts.Keys.Validate(presentedKey(r)); !ok {
			h.reject(rec, "unauthorized", http.StatusUnauthorized, "Unauthorized", clientIP)
			return
		}
	}

	h.mux.ServeHTTP(rec, r)
}

func (h *Handler) serveAsset(a *asset) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", a.contentType)
		w.Header().Set("ETag", a.etag)
		w.Header().Set("Cache-Control", h.cacheControl())
		http.ServeContent(w, r, a.name, time.Time{}, bytes.NewReader(a.body))
	})
}

func (h *Handler) serveToken(w http.ResponseWriter, r *http.Request) {
	value, err := h.theme.Value(r.PathValue("path"))
	if errors.Is(err, theme.ErrUnknownToken) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", h.cacheControl())
	w.Write([]byte(value))
}

func (h *Handler) cacheControl() string {
	return "public, max-age=" + strconv.Itoa(int(h.opts.CacheMaxAge/time.Second))
}

func (h *Handler) setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.opts.AllowedOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, If-None-Match")
}

func (h *Handler) reject(w http.ResponseWriter, reason string, code int, msg, clientIP string) {
	MetricRejectedTotal.WithLabelValues(reason).Inc()
	ui.LogStatus("warning", fmt.Sprintf("Theme request %s: %s", strings.ReplaceAll(reason, "_", " "), clientIP))
	http.Error(w, msg, code)
}

// clientIP extracts the client IP, honouring proxy headers only when trusted.
func (h *Handler) clientIP(r *http.Request) string {
	if h.opts.TrustProxyHeaders {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			// Take the first IP in the chain
			first, _, _ := strings.Cut(forwarded, ",")
			return strings.TrimSpace(first)
		}
		if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
			return realIP
		}
	}

	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return strings.Trim(host, "[]")
}

func presentedKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	return r.URL.Query().Get("key")
}

// routeName maps a path to a bounded metrics label.
func routeName(path string) string {
	switch {
	case path == "/healthz":
		return "healthz"
	case strings.HasPrefix(path, "/tokens/"):
		return "tokens"
	}
	for _, f := range export.Formats() {
		if path == "/theme."+string(f) {
			return "theme." + string(f)
		}
	}
	return "other"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}
