package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "v0.0.1-default"

// flagValues holds raw flag destinations before they are merged into Config.
type flagValues struct {
	configPath  string
	levenshtein bool
	wordForm    bool
	policy      string
	ignoreCase  bool
	details     bool
	format      string
	workers     int
	maxCells    int
	logLevel    string
}

func newRootCmd() *cobra.Command {
	fv := &flagValues{}

	cmd := &cobra.Command{
		Use:   "strdiff [flags] [WORD1 WORD2]",
		Short: "Align two words and print an annotated diff",
		Long: "strdiff aligns two words under a scoring policy and prints a compact diff\n" +
			"where `removed' spans come from the first word and <added> spans from the second.\n\n" +
			"With two arguments one pair is compared. Without arguments pairs are read\n" +
			"from stdin, one \"WORD1 WORD2\" per line, until a blank line or EOF.",
		Version:       version,
		Args:          cobra.MatchAll(cobra.MaximumNArgs(2), exactlyZeroOrTwo),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(fv.configPath)
			if err != nil {
				return err
			}
			fv.apply(cmd, cfg)
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			st, err := cfg.resolve()
			if err != nil {
				return err
			}
			logger.Debug("resolved configuration",
				"policy", cfg.Policy,
				"format", cfg.Format,
				"details", cfg.Details,
				"ignore_case", cfg.IgnoreCase,
				"workers", cfg.Workers,
				"max_cells", cfg.MaxCells,
			)

			r, err := newRunner(st, cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return r.runPair(args[0], args[1])
			}

			return r.runLines(cmd.Context(), cmd.InOrStdin())
		},
	}

	f := cmd.Flags()
	f.StringVar(&fv.configPath, "config", "", "Path to a YAML config file (optional)")
	f.BoolVarP(&fv.levenshtein, "levenshtein", "l", false, "Use the Levenshtein policy (default)")
	f.BoolVarP(&fv.wordForm, "wordform", "c", false, "Use the WordForm policy tuned for inflected word forms")
	f.StringVar(&fv.policy, "policy", "", "Scoring policy by name [levenshtein, wordform]")
	f.BoolVarP(&fv.ignoreCase, "ignore-case", "i", false, "Lower-case both words before comparing")
	f.BoolVarP(&fv.details, "details", "d", false, "Also print score matrix, direction matrix, similarity and alignment")
	f.StringVar(&fv.format, "format", "", "Output format [text, json, yaml]")
	f.IntVar(&fv.workers, "workers", 0, "Parallel comparisons in batch mode (default: GOMAXPROCS)")
	f.IntVar(&fv.maxCells, "max-cells", 0, "Skip pairs whose DP matrix exceeds this many cells (0: unlimited)")
	f.StringVar(&fv.logLevel, "log-level", "", "Log level [debug, info, warn, error]")
	cmd.MarkFlagsMutuallyExclusive("levenshtein", "wordform", "policy")

	return cmd
}

func exactlyZeroOrTwo(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("expected two words or none, got 1")
	}

	return nil
}

// apply copies explicitly set flags over cfg.
func (fv *flagValues) apply(cmd *cobra.Command, cfg *Config) {
	changed := cmd.Flags().Changed
	switch {
	case changed("levenshtein") && fv.levenshtein:
		cfg.Policy = "levenshtein"
	case changed("wordform") && fv.wordForm:
		cfg.Policy = "wordform"
	case changed("policy"):
		cfg.Policy = fv.policy
	}
	if changed("ignore-case") {
		cfg.IgnoreCase = fv.ignoreCase
	}
	if changed("details") {
		cfg.Details = fv.details
	}
	if changed("format") {
		cfg.Format = fv.format
	}
	if changed("workers") {
		cfg.Workers = fv.workers
	}
	if changed("max-cells") {
		cfg.MaxCells = fv.maxCells
	}
	if changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
}
