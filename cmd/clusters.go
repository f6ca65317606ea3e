package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tasnim.dev/hwc-report/internal/config"
	"tasnim.dev/hwc-report/internal/hwc"
	"tasnim.dev/hwc-report/internal/hwc/cce"
	"tasnim.dev/hwc-report/internal/report"
	"tasnim.dev/hwc-report/internal/summary"
)

type clusterReporter interface {
	Report(ctx context.Context, region string) ([]cce.ClusterRecord, error)
}

var newClusterReporter = func(creds config.Credentials, opts hwc.Options) (clusterReporter, error) {
	return hwc.NewCCEClient(creds, opts)
}

func NewClustersCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clusters",
		Short: "Write a detailed summary of every CCE cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, "clusters")
			if err != nil {
				return err
			}

			client, err := newClusterReporter(s.creds, s.clientOpts)
			if err != nil {
				return s.fail(fmt.Errorf("initializing CCE client: %w", err))
			}

			records, err := client.Report(s.ctx, s.creds.Region)
			if err != nil {
				return s.fail(fmt.Errorf("fetching CCE cluster summary: %w", err))
			}

			path := filepath.Join(s.outputDir, report.ClusterFilename)
			if err := report.WriteJSON(path, records); err != nil {
				return s.fail(err)
			}
			s.log.Info().Str("path", path).Int("clusters", len(records)).Msg("CCE cluster summary saved")

			if !opts.noSummary {
				if err := summary.Clusters(cmd.OutOrStdout(), path, records); err != nil {
					s.log.Warn().Err(err).Msg("printing summary")
				}
			}
			return nil
		},
	}
}
