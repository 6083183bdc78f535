package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/homefinder/internal/buildinfo"
	"github.com/dmitrijs2005/homefinder/internal/client/cli"
	"github.com/dmitrijs2005/homefinder/internal/client/config"
	"github.com/dmitrijs2005/homefinder/internal/logging"
)

// shutdownSignals cancel the client's context.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	rt, err := cli.Bootstrap(ctx, cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Error(context.Background(), "shutdown failed", "error", err)
		}
	}()

	if err := rt.App.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "client stopped", "error", err)
	}
}
