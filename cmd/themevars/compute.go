// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/themes"
)

// computeOptions selects the theme source and output shape for compute
type computeOptions struct {
	palette  string
	file     string
	darkMode bool
	format   string
	selector string
}

var computeFlags computeOptions

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Print the CSS variables for a theme",
	Long: `Compute the CSS variables for a built-in palette or a theme file.

Palette, dark mode and selector default to the theme.* config values.`,
	Example: `  themevars compute --palette indigo --dark
  themevars compute --file theme.yaml --format json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts := computeFlags
		settings := config.Theme()
		if opts.palette == "" {
			opts.palette = settings.Palette
		}
		if !cmd.Flags().Changed("dark") {
			opts.darkMode = settings.DarkMode
		}
		if opts.selector == "" {
			opts.selector = settings.Selector
		}

		if err := runCompute(os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// runCompute resolves the theme and writes its variables to w
func runCompute(w io.Writer, opts computeOptions) error {
	theme, err := loadTheme(opts)
	if err != nil {
		return err
	}

	vars := themes.ComputeThemeVariables(theme, opts.darkMode)

	switch opts.format {
	case "", "css":
		_, err = io.WriteString(w, themes.FormatCSS(opts.selector, vars))
	case "json":
		var out []byte
		out, err = json.MarshalIndent(vars, "", "  ")
		if err == nil {
			_, err = fmt.Fprintln(w, string(out))
		}
	default:
		return fmt.Errorf("unknown format %q (want css or json)", opts.format)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadTheme reads the theme file when one is given, else the named palette
func loadTheme(opts computeOptions) (*themes.ColorTheme, error) {
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read theme file: %w", err)
		}
		return themes.ParseThemeDocument(data)
	}

	palette, err := themes.LookupPalette(opts.palette)
	if err != nil {
		return nil, err
	}
	return &palette.Theme, nil
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in palettes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range themes.ListPalettes() {
			fmt.Printf("%-10s %s\n", p.Name, p.Theme.Primary)
		}
	},
}

var parseHexCmd = &cobra.Command{
	Use:   "parse-hex <color>",
	Short: "Print the RGB components of a hex color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rgb, ok := themes.ParseHex(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %q is not a #RGB or #RRGGBB color\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("%d, %d, %d\n", rgb.R, rgb.G, rgb.B)
	},
}

func init() {
	computeCmd.Flags().StringVarP(&computeFlags.palette, "palette", "p", "", "built-in palette name")
	computeCmd.Flags().StringVarP(&computeFlags.file, "file", "f", "", "YAML or JSON theme file (overrides --palette)")
	computeCmd.Flags().BoolVarP(&computeFlags.darkMode, "dark", "d", false, "derive the dark mode variant")
	computeCmd.Flags().StringVar(&computeFlags.format, "format", "css", "output format: css or json")
	computeCmd.Flags().StringVar(&computeFlags.selector, "selector", "", "CSS selector for css output")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(parseHexCmd)
}
