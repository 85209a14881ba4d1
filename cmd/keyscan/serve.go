package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkitools/keyscan/internal/api/router"
	"github.com/pkitools/keyscan/internal/scan"
)

// Serve command flags
var (
	servePort       int
	serveHost       string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the inventory scanner over HTTP",
	Long: `Start an HTTP server exposing the inventory scanner.

Endpoints:
  POST /api/v1/scan   Scan the paths given in the JSON body, return the
                      sorted inventory entries and warnings as JSON
  GET  /health        Liveness check

Environment variables:
  KEYSCAN_PORT  Port to listen on
  KEYSCAN_HOST  Host to bind to

Examples:
  # Serve on the default port
  keyscan serve

  # Serve with a custom exempt-file list
  keyscan serve --port 8080 --config keyscan.yaml`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: 8080)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default: all interfaces)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to YAML configuration file")
}

func runServe(cmd *cobra.Command, args []string) error {
	applyServeEnvVars()

	cfg := scan.DefaultConfig()
	if serveConfigPath != "" {
		loaded, err := scan.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	port := servePort
	if port == 0 {
		port = cfg.Serve.Port
	}
	if port == 0 {
		port = 8080
	}
	host := serveHost
	if host == "" {
		host = cfg.Serve.Host
	}

	handler := router.New(&router.Config{Version: version, Scan: cfg})

	addr := fmt.Sprintf("%s:%d", host, port)
	fmt.Printf("Starting inventory API on %s\n", addr)
	fmt.Printf("  Scan:   POST http://%s/api/v1/scan\n", addr)
	fmt.Printf("  Health: GET  http://%s/health\n", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	return server.ListenAndServe()
}

func applyServeEnvVars() {
	if servePort == 0 {
		if v := os.Getenv("KEYSCAN_PORT"); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				servePort = p
			}
		}
	}
	if serveHost == "" {
		serveHost = os.Getenv("KEYSCAN_HOST")
	}
}
