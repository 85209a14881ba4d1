package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkitools/keyscan/internal/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit log management",
	Long: `Commands for verifying scan audit logs.

The audit log is a tamper-evident record of scan runs: each event is
chained to the previous one with a SHA-256 hash, starting from
hash_prev="sha256:genesis".

Examples:
  # Verify audit log integrity
  keyscan audit verify --log keyscan-audit.jsonl`,
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify audit log integrity",
	Long: `Verify the cryptographic hash chain of an audit log file.

If events were modified, deleted or inserted, the location of the break
is reported.`,
	RunE: runAuditVerify,
}

var auditLogFile string

func init() {
	auditVerifyCmd.Flags().StringVar(&auditLogFile, "log", "", "Path to audit log file (required)")
	_ = auditVerifyCmd.MarkFlagRequired("log")

	auditCmd.AddCommand(auditVerifyCmd)
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	count, err := audit.VerifyChain(auditLogFile)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "VERIFICATION FAILED\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  Valid events: %d\n", count)
		return fmt.Errorf("audit log verification failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "VERIFICATION PASSED\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  Total events: %d\n", count)
	fmt.Fprintf(cmd.OutOrStdout(), "  Hash chain: VALID\n")
	return nil
}
