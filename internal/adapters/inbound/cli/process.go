package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/blueprintfile"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/config"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/provider"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/specstore"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/tui"
	"github.com/auditkraft/auditkraft/internal/application"
)

func newProcessCmd() *cobra.Command {
	var (
		specPath      string
		blueprintPath string
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "process <docs-dir>",
		Short: "Extract a directory of evidence documents and summarize the batch",
		Long:  "Fan evidence documents out to the extraction provider, join the results, and produce the audit report for the batch.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.Provider.ExtractionURL == "" {
				return fmt.Errorf("no extraction provider configured; set provider.extraction_url in .auditkraft.yaml")
			}

			store, err := specstore.New()
			if err != nil {
				return fmt.Errorf("initializing spec store: %w", err)
			}
			spec, err := store.Load(specPath)
			if err != nil {
				return fmt.Errorf("loading spec: %w", err)
			}

			blueprint, err := blueprintfile.New().Load(blueprintPath)
			if err != nil {
				return fmt.Errorf("loading blueprint: %w", err)
			}

			documents, err := listDocuments(args[0])
			if err != nil {
				return err
			}
			if len(documents) == 0 {
				return fmt.Errorf("no documents found under %s", args[0])
			}

			extractor := provider.NewExtractionClient(
				cfg.Provider.ExtractionURL,
				time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
			)
			batch := application.NewBatchService(extractor, cfg.Batch.Concurrency)

			bar := progressbar.NewOptions(len(documents),
				progressbar.OptionSetDescription("extracting"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionClearOnFinish(),
			)
			batch.Progress = func(string) { _ = bar.Add(1) }

			results, err := batch.ProcessDocuments(cmd.Context(), documents, spec)
			if err != nil {
				// Resolved files still get summarized; unfinished ones are
				// dropped, never fabricated.
				fmt.Fprintf(cmd.ErrOrStderr(), "batch interrupted: %v (%d of %d files resolved)\n",
					err, len(results), len(documents))
			}

			report := application.NewSummarizeService().Summarize(blueprint, results)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "spec.yaml", "Path to the pipeline spec")
	cmd.Flags().StringVar(&blueprintPath, "blueprint", "blueprint.yaml", "Path to the evidence blueprint")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}

func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading documents dir: %w", err)
	}
	var docs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		docs = append(docs, filepath.Join(dir, e.Name()))
	}
	sort.Strings(docs)
	return docs, nil
}
