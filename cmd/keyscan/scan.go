package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkitools/keyscan/internal/audit"
	"github.com/pkitools/keyscan/internal/report"
	"github.com/pkitools/keyscan/internal/scan"
)

// Scan command flags
var (
	scanConfigPath string
	scanFormat     string
	scanOutPath    string
)

var scanCmd = &cobra.Command{
	Use:   "scan <path>...",
	Short: "Scan paths for PEM artifacts and print the key inventory",
	Long: `Scan files and directories (recursively) for PEM artifacts.

Recognized artifacts:
  - X.509 certificates        (BEGIN CERTIFICATE)
  - Certificate requests      (BEGIN CERTIFICATE REQUEST)
  - Revocation lists          (BEGIN X509 CRL)
  - RSA key pairs             (BEGIN RSA PRIVATE KEY / BEGIN RSA PUBLIC KEY)

Every distinct public key found across the artifacts is assigned one
canonical name, preferring certificate subjects over request subjects over
key file paths. Each signed artifact is attributed to the registered key
that validates its signature. Files that cannot be interpreted produce a
warning unless their name is on the exempt list (by default: inventory.txt,
ca.pass, serial).

Examples:
  # Scan a directory tree
  keyscan scan ./ca

  # JSON output to a file
  keyscan scan --format json --out inventory.json ./ca`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "Path to YAML configuration file")
	scanCmd.Flags().StringVar(&scanFormat, "format", "text", "Report format: text, json, cbor")
	scanCmd.Flags().StringVar(&scanOutPath, "out", "", "Write the report to a file instead of stdout")
}

func runScan(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(scanFormat)
	if err != nil {
		return err
	}

	cfg := scan.DefaultConfig()
	if scanConfigPath != "" {
		cfg, err = scan.LoadConfig(scanConfigPath)
		if err != nil {
			return err
		}
	}

	if err := audit.LogScanStarted(args); err != nil {
		return err
	}

	// Warnings interleave on stdout while scanning; the report follows.
	out := cmd.OutOrStdout()
	collector := scan.NewCollector(cfg, out)
	entries, err := scan.Run(collector, args)
	if err != nil {
		return err
	}

	dest := out
	if scanOutPath != "" {
		f, err := os.Create(scanOutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		dest = io.Writer(f)
	}
	if err := report.Encode(dest, format, entries); err != nil {
		return err
	}

	return audit.LogReportRendered(len(entries))
}
