// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/themes"
)

// VariablesRequest is the body accepted by ComputeVariablesHandler
type VariablesRequest struct {
	Theme    *themes.ColorTheme `json:"theme"`
	DarkMode bool               `json:"darkMode"`
}

// ListPalettesHandler returns the built-in palette names in display order
func ListPalettesHandler(c *gin.Context) {
	palettes := themes.ListPalettes()
	names := make([]string, 0, len(palettes))
	for _, p := range palettes {
		names = append(names, p.Name)
	}
	c.JSON(http.StatusOK, gin.H{"palettes": names})
}

// PaletteVariablesHandler returns the variables for the palette in :name
func PaletteVariablesHandler(c *gin.Context) {
	darkMode, err := darkModeParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	palette, err := themes.LookupPalette(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, themes.ComputeThemeVariables(&palette.Theme, darkMode))
}

const (
	// MaxVariablesBody caps the size of a POST /api/variables body
	MaxVariablesBody = 64 << 10
	// MaxListColors caps the number of list colors in a posted theme
	MaxListColors = 64
)

// ComputeVariablesHandler computes variables for a theme posted as JSON.
// A missing or null theme yields an empty object.
func ComputeVariablesHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxVariablesBody)

	var req VariablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if req.Theme != nil && len(req.Theme.ListColors) > MaxListColors {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("listColors may hold at most %d entries", MaxListColors)})
		return
	}

	c.JSON(http.StatusOK, themes.ComputeThemeVariables(req.Theme, req.DarkMode))
}

// ThemeCSSHandler serves the variables for a palette as a stylesheet.
// Palette and mode default to the configured values.
func ThemeCSSHandler(c *gin.Context) {
	settings := config.Theme()

	darkMode := settings.DarkMode
	if c.Query("dark") != "" {
		var err error
		if darkMode, err = darkModeParam(c); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	name := c.DefaultQuery("palette", settings.Palette)
	palette, err := themes.LookupPalette(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	css := themes.FormatCSS(settings.Selector, themes.ComputeThemeVariables(&palette.Theme, darkMode))
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

var errInvalidDark = errors.New("dark must be a boolean")

// darkModeParam reads the optional ?dark= query flag
func darkModeParam(c *gin.Context) (bool, error) {
	raw := c.Query("dark")
	if raw == "" {
		return false, nil
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errInvalidDark
	}
	return dark, nil
}
