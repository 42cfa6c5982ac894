package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/specstore"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/tui"
	"github.com/auditkraft/auditkraft/internal/application"
)

func newVerifyCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "verify <spec-file>",
		Short: "Run guardrail gates over a pipeline spec",
		Long:  "Run the classification, schema, and policy gates over a pipeline spec and report PASS/BLOCK per gate.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := specstore.New()
			if err != nil {
				return fmt.Errorf("initializing spec store: %w", err)
			}

			svc := application.NewVerifyService(store)
			_, report, err := svc.VerifyFile(args[0])
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderVerification(report))
			if !report.IsValid {
				return fmt.Errorf("%d gate(s) blocked", len(report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output verification report as JSON")

	return cmd
}
