package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sweepparse",
		Short: "Extract structured results from booster sweep logs",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "sweepparse.yaml", "config file path")
	root.AddCommand(newParseCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newBestCmd())
	return root
}
