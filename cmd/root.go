package cmd

import (
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath string
	outputDir  string
	logLevel   string
	noSummary  bool
}

func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "hwc-report",
		Short:         "Huawei Cloud CCE and ECS inventory reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/hwc-report/config.yaml)")
	cmd.PersistentFlags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory to write reports to (default .)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noSummary, "no-summary", false, "do not print a summary table after writing")

	cmd.AddCommand(NewClustersCmd(opts))
	cmd.AddCommand(NewInstancesCmd(opts))

	return cmd
}
