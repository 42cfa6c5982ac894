package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "auditkraft",
		Short:         "Deterministic verification and scoring for evidence audit pipelines",
		Long:          "AuditKraft verifies pipeline specs against guardrail gates, repairs failing specs, and folds extraction results into readiness scores and compliance opinions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newRepairCmd())
	cmd.AddCommand(newApproveCmd())
	cmd.AddCommand(newSummarizeCmd())
	cmd.AddCommand(newProcessCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
