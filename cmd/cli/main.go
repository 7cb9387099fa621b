package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/nodelaunch/internal/app"
	"github.com/specialistvlad/nodelaunch/internal/cli"
	"github.com/specialistvlad/nodelaunch/internal/config"
	"github.com/specialistvlad/nodelaunch/internal/ecosystem"
	"github.com/specialistvlad/nodelaunch/internal/hcl"
)

// main is the entrypoint for the nodelaunch application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a, err := app.NewApp(outW, errW, appConfig, newLoader(appConfig))
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}

// newLoader selects the HCL loader when definition paths are given and the
// built-in definition otherwise.
func newLoader(cfg *app.Config) config.Loader {
	if len(cfg.ConfigPaths) > 0 {
		return hcl.NewLoader()
	}
	return ecosystem.NewLoader()
}
