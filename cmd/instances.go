package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tasnim.dev/hwc-report/internal/config"
	"tasnim.dev/hwc-report/internal/hwc"
	"tasnim.dev/hwc-report/internal/hwc/ecs"
	"tasnim.dev/hwc-report/internal/report"
	"tasnim.dev/hwc-report/internal/summary"
)

type instanceReporter interface {
	Report(ctx context.Context, region string) ([]ecs.InstanceRecord, error)
}

var newInstanceReporter = func(creds config.Credentials, opts hwc.Options) (instanceReporter, error) {
	return hwc.NewECSClient(creds, opts)
}

func NewInstancesCmd(opts *globalOptions) *cobra.Command {
	var rawAccessKey bool

	cmd := &cobra.Command{
		Use:   "instances",
		Short: "Write a summary of every ECS server with its flavor and addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, "instances")
			if err != nil {
				return err
			}

			client, err := newInstanceReporter(s.creds, s.clientOpts)
			if err != nil {
				return s.fail(fmt.Errorf("initializing ECS client: %w", err))
			}

			records, err := client.Report(s.ctx, s.creds.Region)
			if err != nil {
				return s.fail(err)
			}

			raw := rawAccessKey || s.cfg.RawAccessKey
			if raw {
				s.log.Warn().Msg("access key is embedded in the output filename")
			}
			name := report.InstanceFilename(s.creds.AccessKey, s.creds.ProjectID, s.creds.Region, now(), raw)
			path := filepath.Join(s.outputDir, name)
			if err := report.WriteJSON(path, records); err != nil {
				return s.fail(fmt.Errorf("failed to save data to JSON file: %w", err))
			}
			s.log.Info().Str("path", path).Int("servers", len(records)).Msg("ECS summary saved")

			if !opts.noSummary {
				if err := summary.Instances(cmd.OutOrStdout(), path, records); err != nil {
					s.log.Warn().Err(err).Msg("printing summary")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rawAccessKey, "raw-access-key", false, "embed the full access key in the output filename")

	return cmd
}
