// Package main provides a CLI that prints draws from a seeded legacy
// generator.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	jrandcmd "github.com/louisbranch/jinterop/internal/cmd/jrand"
	platformcmd "github.com/louisbranch/jinterop/internal/platform/cmd"
	"github.com/louisbranch/jinterop/internal/platform/config"
	"github.com/louisbranch/jinterop/random"
)

func main() {
	cfg, err := jrandcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitUsage, "Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceRand, func(ctx context.Context) error {
		return jrandcmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		stop()
		switch {
		case errors.Is(err, random.ErrInvalidBound),
			errors.Is(err, jrandcmd.ErrInvalidBits),
			errors.Is(err, jrandcmd.ErrInvalidCount),
			errors.Is(err, jrandcmd.ErrUnknownOp):
			config.ExitCodef(config.ExitUsage, "Error: %v", err)
		}
		config.Exitf("Error: %v", err)
	}
}
