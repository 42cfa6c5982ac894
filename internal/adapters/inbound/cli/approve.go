package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/specstore"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/tui"
	"github.com/auditkraft/auditkraft/internal/application"
)

func newApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <spec-file>",
		Short: "Approve a pipeline spec that passes all gates",
		Long:  "Verify a pipeline spec and, if every gate passes, flip its approved flag. Approval never changes the version or the repair history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := specstore.New()
			if err != nil {
				return fmt.Errorf("initializing spec store: %w", err)
			}

			svc := application.NewVerifyService(store)
			spec, report, err := svc.VerifyFile(args[0])
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			if !report.IsValid {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderVerification(report))
				return fmt.Errorf("cannot approve: %d gate(s) blocked", len(report.Errors))
			}

			if spec.Approved {
				fmt.Fprintf(cmd.OutOrStdout(), "Spec %s v%s is already approved.\n", spec.ID, spec.Version)
				return nil
			}

			spec.Approved = true
			if err := store.Save(args[0], spec); err != nil {
				return fmt.Errorf("saving approved spec: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Approved %s v%s.\n", spec.ID, spec.Version)
			return nil
		},
	}

	return cmd
}
