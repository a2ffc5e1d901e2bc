package cmd

import (
	"fmt"
	"os"

	"github.com/signalnine/sweepparse/internal/artifact"
	"github.com/signalnine/sweepparse/internal/config"
	"github.com/signalnine/sweepparse/internal/rank"
	"github.com/signalnine/sweepparse/internal/report"
	"github.com/signalnine/sweepparse/internal/sweeplog"
	"github.com/spf13/cobra"
)

var (
	flagOutDir string
	flagTopN   int
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse a sweep log and write CSV/JSON artifacts",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "artifacts", "artifact output directory")
	cmd.Flags().IntVar(&flagTopN, "top-n", 10, "number of runs in the top listing")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = flagOutDir
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = flagTopN
	}

	res, err := parseInput(args[0], cfg)
	if err != nil {
		return err
	}

	w, err := artifact.NewWriter(cfg.OutDir)
	if err != nil {
		return err
	}
	csvPath, err := w.WriteCSV(res.Runs, cfg.Artifacts.CSV)
	if err != nil {
		return err
	}

	best := rank.Best(res.Runs)
	if best != nil {
		if _, err := w.WriteBest(best, cfg.Artifacts.Best); err != nil {
			return err
		}
	}
	incompletePath := ""
	if len(res.Incomplete) > 0 {
		incompletePath, err = w.WriteIncomplete(res.Incomplete, cfg.Artifacts.Incomplete)
		if err != nil {
			return err
		}
	}

	report.Summary(cmd.OutOrStdout(), res, best, rank.Top(res.Runs, cfg.TopN), csvPath, incompletePath)
	return nil
}

func parseInput(path string, cfg *config.Config) (*sweeplog.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	res, err := sweeplog.New(cfg.Profiles...).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return res, nil
}
