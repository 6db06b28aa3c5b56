package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/adg/engine"
	"github.com/katalvlaran/adg/theory"
)

func generateCmd(ro *rootOptions) *cobra.Command {
	var (
		configPath string
		rf         = RunFile{Theory: string(theory.MBPT), Order: 2, Ranks: []int{2}, Format: "text"}
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derive every valid diagram and its expression",
		Example: "  adg generate --theory MBPT --order 3 --ranks 2\n" +
			"  adg generate --theory BMBPT --order 3 --ranks 1,2 --format yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := overlay(cmd, configPath, rf)
			if err != nil {
				return err
			}
			if err := checkFormat(run.Format); err != nil {
				return err
			}
			cfg, err := run.config()
			if err != nil {
				return err
			}
			ro.logger.Debug("configuration ready", zap.Stringer("config", cfg))

			res, err := engine.Generate(cmd.Context(), cfg, engine.WithLogger(ro.logger))
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), run.Format, buildReport(res))
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML run file providing defaults")
	f.StringVar(&rf.Theory, "theory", rf.Theory, "formalism: MBPT or BMBPT")
	f.IntVar(&rf.Order, "order", rf.Order, "perturbative order (vertex count)")
	f.IntSliceVar(&rf.Ranks, "ranks", rf.Ranks, "allowed interaction body-ranks")
	f.IntSliceVar(&rf.ObservableRanks, "observable-ranks", nil, "allowed observable body-ranks (BMBPT)")
	f.BoolVar(&rf.CanonicalOnly, "canonical-only", false, "keep one-body vertices on the observable only")
	f.IntVar(&rf.Workers, "workers", 0, "worker bound (0 = one per CPU)")
	f.StringVar(&rf.Format, "format", rf.Format, "report format: text or yaml")

	return cmd
}

// overlay loads the run file, if any, and re-applies explicitly set flags.
func overlay(cmd *cobra.Command, path string, flags RunFile) (RunFile, error) {
	if path == "" {
		return flags, nil
	}
	run, err := loadRunFile(path)
	if err != nil {
		return RunFile{}, err
	}
	fs := cmd.Flags()
	if fs.Changed("theory") || run.Theory == "" {
		run.Theory = flags.Theory
	}
	if fs.Changed("order") || run.Order == 0 {
		run.Order = flags.Order
	}
	if fs.Changed("ranks") || len(run.Ranks) == 0 {
		run.Ranks = flags.Ranks
	}
	if fs.Changed("observable-ranks") {
		run.ObservableRanks = flags.ObservableRanks
	}
	if fs.Changed("canonical-only") {
		run.CanonicalOnly = flags.CanonicalOnly
	}
	if fs.Changed("workers") {
		run.Workers = flags.Workers
	}
	if fs.Changed("format") || run.Format == "" {
		run.Format = flags.Format
	}

	return run, nil
}

// config validates the run description into a Theory Configuration.
func (rf RunFile) config() (*theory.Config, error) {
	f, err := theory.ParseFormalism(rf.Theory)
	if err != nil {
		return nil, err
	}
	var opts []theory.Option
	if len(rf.ObservableRanks) > 0 {
		opts = append(opts, theory.WithObservableRanks(rf.ObservableRanks...))
	}
	if rf.CanonicalOnly {
		opts = append(opts, theory.WithCanonicalOnly())
	}
	opts = append(opts, theory.WithWorkers(rf.Workers))
	cfg, err := theory.New(f, rf.Order, rf.Ranks, opts...)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return cfg, nil
}
