// Package main provides a CLI that prints legacy hash codes.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	jhashcmd "github.com/louisbranch/jinterop/internal/cmd/jhash"
	platformcmd "github.com/louisbranch/jinterop/internal/platform/cmd"
	"github.com/louisbranch/jinterop/internal/platform/config"
)

func main() {
	cfg, err := jhashcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitUsage, "Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceHash, func(ctx context.Context) error {
		return jhashcmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	})
	if err != nil {
		stop()
		if errors.Is(err, jhashcmd.ErrUnknownKind) || errors.Is(err, jhashcmd.ErrInvalidValue) {
			config.ExitCodef(config.ExitUsage, "Error: %v", err)
		}
		config.Exitf("Error: %v", err)
	}
}
