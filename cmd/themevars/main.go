// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "themevars",
	Short: "themevars - CSS variables from color themes",
	Long: `themevars turns a small color theme into the CSS custom properties a
site stylesheet consumes, with an optional dark mode derived from it.

Themes come from the built-in palettes or from a YAML/JSON theme file, and
the variables can be printed or served over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
