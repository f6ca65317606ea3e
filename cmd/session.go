package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tasnim.dev/hwc-report/internal/config"
	"tasnim.dev/hwc-report/internal/exit"
	"tasnim.dev/hwc-report/internal/hwc"
	"tasnim.dev/hwc-report/internal/hwc/apierr"
	"tasnim.dev/hwc-report/internal/logging"
)

// Swapped out in tests.
var (
	getenv = os.Getenv
	now    = time.Now
)

// session is the per-run state shared by both report commands.
type session struct {
	ctx        context.Context
	log        zerolog.Logger
	cfg        *config.Config
	creds      config.Credentials
	outputDir  string
	clientOpts hwc.Options
}

func newSession(cmd *cobra.Command, opts *globalOptions, component string) (*session, error) {
	s := &session{log: logging.New(cmd.ErrOrStderr(), opts.logLevel, component)}

	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, s.fail(fmt.Errorf("%w: loading config: %w", config.ErrConfiguration, err))
	}

	outputDir, level := cfg.Merge(opts.outputDir, opts.logLevel)
	s.log = s.log.Level(logging.ParseLevel(level))
	s.cfg = cfg
	s.outputDir = outputDir
	s.clientOpts = hwc.Options{Timeout: cfg.Timeout()}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s.ctx = s.log.WithContext(ctx)

	creds, err := config.FromEnv(getenv)
	if err != nil {
		return nil, s.fail(err)
	}
	s.creds = creds
	return s, nil
}

// fail logs err once and tags it with the exit code for main.
func (s *session) fail(err error) error {
	kind, code := "runtime", exit.CodeRuntime
	if errors.Is(err, config.ErrConfiguration) {
		kind, code = "configuration", exit.CodeConfig
	}

	ev := s.log.Error().Err(err).Str("error_kind", kind)
	if id := apierr.RequestID(err); id != "" {
		ev = ev.Str("request_id", id)
	}
	ev.Msg("report failed")

	return exit.New(code, err)
}
