package cmd

import (
	"github.com/signalnine/sweepparse/internal/config"
	"github.com/signalnine/sweepparse/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagFormat     string
	flagReportTopN int
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <input>",
		Short: "Render completed runs without writing artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top-n") {
				cfg.TopN = flagReportTopN
			}
			res, err := parseInput(args[0], cfg)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), res.Runs, flagFormat, cfg.TopN)
		},
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	cmd.Flags().IntVar(&flagReportTopN, "top-n", 10, "number of runs to include")
	return cmd
}
