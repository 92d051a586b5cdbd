package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/ts-perf/internal/experiment"
	"github.com/DjordjeVuckovic/ts-perf/internal/report"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage/factory"
	"github.com/spf13/cobra"
)

type evalOptions struct {
	file     string
	output   string
	store    bool
	parallel int
	discard  bool
}

func newEvalCmd() *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an experiment file and print its performance report",
		Long: `Reads an experiment YAML describing per-run predictions, builds the
per-run confusion or contingency matrices, aggregates them and prints the
report. Use --output to also write JSON and --store to persist the report
in the backend selected by STORAGE_TYPE.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEval(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to experiment YAML")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the JSON report to this path")
	cmd.Flags().BoolVar(&opts.store, "store", false, "persist the report in the configured storage")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "override the number of runs evaluated concurrently")
	cmd.Flags().BoolVar(&opts.discard, "discard", false, "discard trajectories once each run is finalized")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runEval(cmd *cobra.Command, opts evalOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rpt, err := evaluateFile(ctx, opts.file, experiment.Config{
		Parallel:           opts.parallel,
		DeleteTrajectories: opts.discard,
	})
	if err != nil {
		return err
	}

	report.WriteTable(rpt, cmd.OutOrStdout())

	if opts.output != "" {
		if err := report.WriteJSON(rpt, opts.output); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
		slog.Info("Report written", "path", opts.output)
	}

	if opts.store {
		cfg, err := factory.LoadEnv()
		if err != nil {
			return err
		}
		store, _, err := factory.NewStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Save(ctx, rpt)
		if err != nil {
			return fmt.Errorf("store report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stored report %s\n", id)
	}
	return nil
}

func evaluateFile(ctx context.Context, path string, cfg experiment.Config) (*report.Report, error) {
	spec, err := experiment.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load experiment %s: %w", path, err)
	}

	out, err := experiment.New(cfg).Run(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("evaluate experiment %s: %w", spec.Name, err)
	}
	return report.Generate(out), nil
}
