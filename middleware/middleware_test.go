package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservations/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthenticator struct {
	ids map[string]services.Identity
	err error
}

func (f fakeAuthenticator) Authenticate(_ context.Context, raw string) (services.Identity, error) {
	if f.err != nil {
		return services.Anonymous, f.err
	}
	id, ok := f.ids[raw]
	if !ok {
		return services.Anonymous, services.ErrUnauthenticated
	}
	return id, nil
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Logger())
	r.Use(handlers...)
	r.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentIdentity(c).Username)
	})
	return r
}

func serve(r http.Handler, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoggerRequestID(t *testing.T) {
	t.Parallel()
	r := newEngine()

	w := serve(r, http.Header{RequestIDHeader: {"req-123"}})
	if got := w.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("%s = %q, want req-123", RequestIDHeader, got)
	}

	w = serve(r, nil)
	if got := w.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Fatalf("%s = %q, want a generated uuid", RequestIDHeader, got)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	auth := fakeAuthenticator{ids: map[string]services.Identity{
		"good": {AccountID: 7, Username: "alice"},
	}}
	r := newEngine(Authenticate(auth))

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer bad", http.StatusUnauthorized, ""},
		{"valid token", "Bearer good", http.StatusOK, "alice"},
	}
	for _, tt := range tests {
		h := http.Header{}
		if tt.header != "" {
			h.Set("Authorization", tt.header)
		}
		w := serve(r, h)
		if w.Code != tt.code {
			t.Fatalf("%s: code = %d, want %d", tt.name, w.Code, tt.code)
		}
		if tt.body != "" && w.Body.String() != tt.body {
			t.Fatalf("%s: body = %q, want %q", tt.name, w.Body.String(), tt.body)
		}
	}
}

func TestAuthenticateStoreFailure(t *testing.T) {
	t.Parallel()
	r := newEngine(Authenticate(fakeAuthenticator{err: errors.New("db down")}))

	w := serve(r, http.Header{"Authorization": {"Bearer good"}})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
}

func TestRateLimitWithoutRedis(t *testing.T) {
	t.Parallel()
	r := newEngine(RateLimit(RateLimitConfig{Enabled: true, Capacity: 1, RefillInterval: time.Minute, Prefix: "t"}, nil))

	for i := 0; i < 5; i++ {
		if w := serve(r, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i, w.Code)
		}
	}
}

func TestRateKey(t *testing.T) {
	t.Parallel()

	if got, want := rateKey("hotel:rl", "10.0.0.1", "POST", "/api/auth/login"), "hotel:rl:ip:10.0.0.1:route:POST /api/auth/login"; got != want {
		t.Fatalf("rateKey = %q, want %q", got, want)
	}
	if got, want := rateKey("p", "", "GET", ""), "p:ip:unknown:route:GET unmatched"; got != want {
		t.Fatalf("rateKey = %q, want %q", got, want)
	}
}

func TestRateLimitTTL(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{Capacity: 2, RefillInterval: time.Second}
	if got := cfg.ttl(); got != 5*time.Second {
		t.Fatalf("ttl = %v, want 5s", got)
	}
	cfg.Capacity = 10
	if got := cfg.ttl(); got != 10*time.Second {
		t.Fatalf("ttl = %v, want 10s", got)
	}
}

func TestAsInt64(t *testing.T) {
	t.Parallel()

	for _, v := range []interface{}{int64(3), 3, float64(3), "3"} {
		if got := asInt64(v); got != 3 {
			t.Fatalf("asInt64(%#v) = %d, want 3", v, got)
		}
	}
}
