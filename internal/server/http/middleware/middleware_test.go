package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenExtractor(t *testing.T) {
	var stored string
	var present bool
	router := gin.New()
	router.Use(TokenExtractor())
	router.GET("/", func(c *gin.Context) {
		var v any
		v, present = c.Get(TokenContextKey)
		stored, _ = v.(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if present {
		t.Fatal("expected no token in context without header")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("token", "  session-token  ")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if !present || stored != "session-token" {
		t.Fatalf("expected trimmed token in context, got %q", stored)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))

	logged := buf.String()
	if !strings.Contains(logged, "/ping") || !strings.Contains(logged, "204") {
		t.Fatalf("request not logged: %s", logged)
	}
}

func TestDecompressRequest(t *testing.T) {
	var received string
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		received = string(body)
	})

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write([]byte(`{"ok":true}`)); err != nil {
		t.Fatalf("compress body: %v", err)
	}
	zw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if received != `{"ok":true}` {
		t.Fatalf("unexpected decompressed body %q", received)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken gzip, got %d", resp.Code)
	}
}
