// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themevars/internal/config"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/theme.css", nil)

	SecurityHeadersMiddleware()(c)

	expected := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	}
	for header, want := range expected {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should not be set without TLS")
	}
}

func TestSecurityHeadersHSTS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	if err := config.InitConfig(filepath.Join(t.TempDir(), "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if err := config.Set("server.tls_enabled", true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	t.Cleanup(func() { config.Set("server.tls_enabled", false) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/theme.css", nil)

	SecurityHeadersMiddleware()(c)

	if w.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS should be set when TLS is enabled")
	}
}
