package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/blueprintfile"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/gitinfo"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/history"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/resultstore"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/tui"
	"github.com/auditkraft/auditkraft/internal/application"
	"github.com/auditkraft/auditkraft/internal/domain"
)

func newSummarizeCmd() *cobra.Command {
	var (
		blueprintPath string
		jsonOutput    bool
		ciMode        bool
		minReadiness  float64
		showHistory   bool
	)

	cmd := &cobra.Command{
		Use:   "summarize <results-dir>",
		Short: "Fold stored extraction results into an audit report",
		Long:  "Aggregate stored FileResult documents against a blueprint and produce metric totals, a readiness score, a compliance opinion, and remediation actions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hist := history.New()

			if showHistory {
				entries, err := hist.Load(".")
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			blueprint, err := blueprintfile.New().Load(blueprintPath)
			if err != nil {
				return fmt.Errorf("loading blueprint: %w", err)
			}

			results, err := resultstore.New().LoadDir(args[0])
			if err != nil {
				return fmt.Errorf("loading results: %w", err)
			}

			report := application.NewSummarizeService().Summarize(blueprint, results)

			// Attach workspace commit hash if available
			if hash, err := gitinfo.New().CommitHash("."); err == nil {
				report.Summary.CommitHash = hash
			}

			entry := domain.SummaryEntry{
				ID:             uuid.NewString(),
				Timestamp:      time.Now().Format(time.RFC3339),
				CommitHash:     report.Summary.CommitHash,
				TotalFiles:     report.Summary.TotalFiles,
				ReadinessScore: report.ReadinessScore,
				Opinion:        string(report.Opinion),
			}
			_ = hist.Save(".", entry) // best-effort

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode && report.ReadinessScore < minReadiness {
				return fmt.Errorf("readiness %.1f is below minimum %.1f", report.ReadinessScore, minReadiness)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&blueprintPath, "blueprint", "blueprint.yaml", "Path to the evidence blueprint")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if readiness below --min")
	cmd.Flags().Float64Var(&minReadiness, "min", 0, "Minimum readiness score for CI mode")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show summary history")

	return cmd
}
