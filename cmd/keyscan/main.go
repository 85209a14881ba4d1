// Command keyscan inventories PEM-encoded PKI artifacts on disk.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkitools/keyscan/internal/audit"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var auditLogPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keyscan",
	Short: "keyscan - PEM artifact and key inventory tool",
	Long: `keyscan scans filesystem trees for PEM-encoded PKI artifacts
(X.509 certificates, certificate requests, CRLs, RSA key pairs),
deduplicates the public keys that appear across them, assigns each
distinct key a stable canonical name, and reports which key signed
each artifact.

Examples:
  # Scan a CA directory and print the inventory
  keyscan scan ./ca

  # Scan several trees with a custom exempt-file list
  keyscan scan --config keyscan.yaml ./ca ./requests

  # Machine-readable output
  keyscan scan --format json ./ca

  # Expose the inventory over HTTP
  keyscan serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if auditLogPath == "" {
			auditLogPath = os.Getenv("KEYSCAN_AUDIT_LOG")
		}
		if auditLogPath != "" {
			if err := audit.InitFile(auditLogPath); err != nil {
				return fmt.Errorf("failed to initialize audit log: %w", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return audit.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&auditLogPath, "audit-log", "",
		"Path to audit log file (or set KEYSCAN_AUDIT_LOG env var)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(auditCmd)
}
