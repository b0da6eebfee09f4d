package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eshop-next/internal/config"

	"github.com/gin-gonic/gin"
)

func TestCORSPolicyAllowOrigin(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config.CORSConfig
		origin string
		want   string
		ok     bool
	}{
		{name: "empty config allows any", cfg: config.CORSConfig{}, origin: "https://shop.example.com", want: "*", ok: true},
		{name: "wildcard with credentials echoes", cfg: config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true}, origin: "https://shop.example.com", want: "https://shop.example.com", ok: true},
		{name: "listed origin ignores case and slash", cfg: config.CORSConfig{AllowedOrigins: []string{"https://Shop.Example.com/"}}, origin: "https://shop.example.com", want: "https://shop.example.com", ok: true},
		{name: "unlisted origin", cfg: config.CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}}, origin: "https://evil.example.com", ok: false},
		{name: "blank origin", cfg: config.CORSConfig{AllowedOrigins: []string{"*"}}, origin: "  ", ok: false},
	}
	for _, tc := range cases {
		got, ok := newCORSPolicy(tc.cfg).allowOrigin(tc.origin)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: want (%q, %v) got (%q, %v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

func newCORSTestEngine(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(cfg))
	r.GET("/api/v1/public/products", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	r := newCORSTestEngine(config.CORSConfig{
		AllowedOrigins: []string{"https://shop.example.com"},
		AllowedMethods: []string{"get", "post"},
		MaxAge:         600,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/public/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("allowed preflight want 204 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
		t.Fatalf("allow methods mismatch: %q", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Fatalf("max age mismatch: %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/api/v1/public/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("unlisted preflight want 403 got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted preflight should not get allow origin, got %q", got)
	}
}

func TestCORSMiddlewareSimpleRequest(t *testing.T) {
	r := newCORSTestEngine(config.CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Fatalf("allow origin mismatch: %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != requestIDHeader {
		t.Fatalf("request id header should be exposed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Fatalf("simple request should not carry preflight headers, got %q", got)
	}

	// 非白名单来源照常处理，由浏览器拦截响应
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/public/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unlisted simple request want 200 without cors headers, got %d %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
	}
}
