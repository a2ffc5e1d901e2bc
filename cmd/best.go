package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/signalnine/sweepparse/internal/config"
	"github.com/signalnine/sweepparse/internal/rank"
	"github.com/spf13/cobra"
)

func newBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best <input>",
		Short: "Print the best run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			res, err := parseInput(args[0], cfg)
			if err != nil {
				return err
			}
			best := rank.Best(res.Runs)
			if best == nil {
				return fmt.Errorf("no completed runs in %s", args[0])
			}
			data, err := json.MarshalIndent(best, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling best run: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
