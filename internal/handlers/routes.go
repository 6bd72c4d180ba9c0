// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/middleware"
)

// VariablesPath is the rate limited endpoint that accepts arbitrary themes
const VariablesPath = "/api/variables"

// NewRouter wires the theme routes. limiter may be nil to disable rate limiting.
// Forwarding headers are only trusted from server.trusted_proxies.
func NewRouter(limiter *middleware.RateLimiter) (*gin.Engine, error) {
	r := gin.Default()

	var proxies []string
	if p := config.GetStringSlice("server.trusted_proxies"); len(p) > 0 {
		proxies = p
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		return nil, fmt.Errorf("invalid server.trusted_proxies: %w", err)
	}

	r.Use(middleware.SecurityHeadersMiddleware())
	if limiter != nil {
		r.Use(middleware.RateLimitMiddleware(limiter, VariablesPath))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "themevars",
		})
	})

	r.GET("/theme.css", ThemeCSSHandler)

	api := r.Group("/api")
	{
		api.GET("/palettes", ListPalettesHandler)
		api.GET("/palettes/:name/variables", PaletteVariablesHandler)
		api.POST("/variables", ComputeVariablesHandler)
	}

	return r, nil
}
