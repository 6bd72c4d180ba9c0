// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themevars/internal/config"
	"github.com/thatcatcamp/themevars/internal/handlers"
	"github.com/thatcatcamp/themevars/internal/middleware"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the themevars HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		limiter := middleware.NewRateLimiter(
			config.GetInt("ratelimit.requests"),
			config.GetDuration("ratelimit.interval"),
		)
		defer limiter.Stop()

		r, err := handlers.NewRouter(limiter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		settings := config.Theme()
		log.Printf("Default palette: %s (dark mode: %t)", settings.Palette, settings.DarkMode)

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		fmt.Printf("Starting HTTP server on %s\n", httpAddr)
		if err := r.Run(httpAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
