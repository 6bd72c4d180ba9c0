// SPDX-License-Identifier: MIT
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themevars/internal/config"
)

// SecurityHeadersMiddleware adds security headers to all responses. The
// service only serves stylesheets and JSON, so nothing may be framed,
// scripted or embedded from it.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing of stylesheets served as text/css
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Stylesheets are fetched cross-origin by the sites that embed them
		c.Header("Cross-Origin-Resource-Policy", "cross-origin")

		if config.GetBool("server.tls_enabled") {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
