package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// captureLogs swaps the global logger for a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = zerolog.New(&buf)
	return &buf
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/videos/:id", func(c *gin.Context) {
		if v, ok := c.Get(requestIDKey); !ok || v == "" {
			t.Fatal("correlation ID missing from context")
		}
		c.Status(http.StatusOK)
	})

	// Without a header the middleware mints one.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/v1", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a generated %s header", requestIDHeader)
	}

	// A client-supplied ID is echoed back; header lookup is case-insensitive.
	for _, hdr := range []string{requestIDHeader, strings.ToLower(requestIDHeader)} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/videos/v1", nil)
		req.Header.Set(hdr, "link-req-42")
		r.ServeHTTP(w, req)
		if got := w.Header().Get(requestIDHeader); got != "link-req-42" {
			t.Fatalf("header %q: echoed id = %q, want link-req-42", hdr, got)
		}
	}
}

func TestLogger_LevelsAndRouteFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger())

	r.GET("/courses/:id/videos", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"videos": []string{}})
	})
	r.POST("/links/:id/consume", func(c *gin.Context) {
		_ = c.Error(errors.New("link already consumed"))
		c.Status(http.StatusConflict)
	})

	cases := []struct {
		method, target string
		wantStatus     int
	}{
		{http.MethodGet, "/courses/c1/videos", http.StatusOK},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
		{http.MethodPost, "/links/l1/consume", http.StatusConflict},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))
		if w.Code != tc.wantStatus {
			t.Fatalf("%s %s -> %d, want %d", tc.method, tc.target, w.Code, tc.wantStatus)
		}
	}

	logs := buf.String()
	// 200 logs at info with the route pattern, not the expanded path.
	if !strings.Contains(logs, `"level":"info"`) || !strings.Contains(logs, `"path":"/courses/:id/videos"`) {
		t.Fatalf("expected info line with route pattern, got:\n%s", logs)
	}
	// Unmatched routes log the raw URL path at warn.
	if !strings.Contains(logs, `"level":"warn"`) || !strings.Contains(logs, `"path":"/nowhere"`) {
		t.Fatalf("expected warn line with raw path fallback, got:\n%s", logs)
	}
	// A collected Gin error forces error level even for a 4xx.
	if !strings.Contains(logs, `"level":"error"`) || !strings.Contains(logs, "link already consumed") {
		t.Fatalf("expected error line carrying the handler error, got:\n%s", logs)
	}
}

func TestRecovery_JSONEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger())
	r.Use(Recovery())
	r.GET("/videos/:id/access", func(c *gin.Context) {
		panic("gate wiring broke")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/videos/v1/access", nil)
	req.Header.Set(requestIDHeader, "panic-req-1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != "internal_error" || body["request_id"] != "panic-req-1" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic log, got:\n%s", buf.String())
	}
}

func TestRecovery_PanicAfterWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(Recovery())
	// A body has already gone out, so Recovery must not append the JSON
	// envelope on top of it.
	r.GET("/videos/:id/access", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late failure")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/v1/access", nil))

	if strings.Contains(w.Body.String(), "internal_error") {
		t.Fatalf("JSON envelope written after partial body: %q", w.Body.String())
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic log, got:\n%s", buf.String())
	}
}

func TestLoggerFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Without Logger() the fallback carries no request fields.
	buf := captureLogs(t)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/links/:id", func(c *gin.Context) {
		LoggerFrom(c).Info().Str("link_id", c.Param("id")).Msg("issued")
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/links/l1", nil))
	if out := buf.String(); !strings.Contains(out, `"link_id":"l1"`) || strings.Contains(out, `"request_id"`) {
		t.Fatalf("fallback logger output unexpected:\n%s", out)
	}

	// With Logger() the handler's line inherits the request fields.
	buf2 := captureLogs(t)
	r2 := gin.New()
	r2.Use(RequestID())
	r2.Use(Logger())
	r2.GET("/links/:id", func(c *gin.Context) {
		LoggerFrom(c).Info().Str("link_id", c.Param("id")).Msg("issued")
		c.Status(http.StatusOK)
	})
	w2 := httptest.NewRecorder()
	r2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/links/l2", nil))
	out := buf2.String()
	if !strings.Contains(out, `"link_id":"l2"`) || !strings.Contains(out, `"request_id"`) {
		t.Fatalf("request-scoped logger output unexpected:\n%s", out)
	}
}

func TestClipAndCtxString(t *testing.T) {
	if ctxString("abc") != "abc" || ctxString(7) != "" || ctxString(nil) != "" {
		t.Fatal("ctxString conversions wrong")
	}
	if clip("video_id=v1", 64) != "video_id=v1" {
		t.Fatal("clip must pass short strings through")
	}
	if got := clip("abcdefgh", 5); got != "abcde…" {
		t.Fatalf("clip = %q, want %q", got, "abcde…")
	}
	if clip("abc", 0) != "abc" {
		t.Fatal("clip with max<=0 must be a no-op")
	}
}
