package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptir/internal/config"
	"scriptir/internal/trace"
)

// setupTracing builds the tracer from scriptir.toml, overridden by the
// --trace* flags, and attaches it to the command context. It returns the
// cleanup function and the in-memory ring when one is kept.
func setupTracing(cmd *cobra.Command, cfg config.Config) (func(), *trace.RingTracer, error) {
	flags := cmd.Root().PersistentFlags()
	overrides := []struct {
		flag string
		dst  *string
	}{
		{"trace", &cfg.Trace.Output},
		{"trace-level", &cfg.Trace.Level},
		{"trace-mode", &cfg.Trace.Mode},
		{"trace-format", &cfg.Trace.Format},
	}
	for _, o := range overrides {
		v, err := flags.GetString(o.flag)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get %s flag: %w", o.flag, err)
		}
		if flags.Changed(o.flag) {
			*o.dst = v
		}
	}
	// --trace alone means "trace at phase level"
	if flags.Changed("trace") && !flags.Changed("trace-level") && cfg.Trace.Level == "off" {
		cfg.Trace.Level = "phase"
	}

	tc, err := cfg.TracerConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid trace settings: %w", err)
	}
	if tc.Level == trace.LevelError {
		// error level only feeds the failure dump
		tc.Mode = trace.ModeRing
	}

	tracer, ring, err := trace.New(tc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	span, ctx := trace.Start(ctx, trace.ScopeCommand, cmd.CommandPath())
	cmd.SetContext(ctx)

	cleanup := func() {
		span.End("")
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, ring, nil
}
