package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/config"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/provider"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/specstore"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/tui"
	"github.com/auditkraft/auditkraft/internal/application"
	"github.com/auditkraft/auditkraft/internal/domain"
)

func newRepairCmd() *cobra.Command {
	var (
		maxAttempts int
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "repair <spec-file>",
		Short: "Repair a pipeline spec that fails gate verification",
		Long:  "Verify a pipeline spec, patch it via the configured repair provider (or the deterministic fallback), and re-verify until the gates pass or the attempt bound is hit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if maxAttempts > 0 {
				cfg.Repair.MaxAttempts = maxAttempts
			}

			store, err := specstore.New()
			if err != nil {
				return fmt.Errorf("initializing spec store: %w", err)
			}
			spec, err := store.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading spec: %w", err)
			}

			var repairProvider domain.RepairProvider
			if cfg.Provider.RepairURL != "" {
				repairProvider = provider.NewRepairClient(
					cfg.Provider.RepairURL,
					time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
				)
			}

			svc := application.NewRepairService(repairProvider, cfg.Repair.MaxAttempts)
			repaired, report, err := svc.RepairUntilValid(cmd.Context(), spec)
			if err != nil {
				return fmt.Errorf("repair failed: %w", err)
			}

			if repaired.Version == spec.Version {
				fmt.Fprintln(cmd.OutOrStdout(), "Spec already passes all gates; nothing to repair.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRepair(spec, repaired))
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderVerification(report))

			if dryRun {
				return nil
			}
			if err := store.Save(args[0], repaired); err != nil {
				return fmt.Errorf("saving repaired spec: %w", err)
			}
			if !report.IsValid {
				return fmt.Errorf("spec still blocked after %d attempt(s)", cfg.Repair.MaxAttempts)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Override repair.max_attempts from config")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the repaired spec without saving it")

	return cmd
}
