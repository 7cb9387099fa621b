package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/nodelaunch/internal/ctxlog"
	"github.com/specialistvlad/nodelaunch/internal/history"
	"github.com/specialistvlad/nodelaunch/internal/launcher"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandShow:
		err = a.show()
	case CommandEnv:
		err = a.env()
	case CommandRun:
		err = a.launchAll(ctx)
	case CommandHistory:
		err = a.printHistory(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

// show prints the selected records as indented JSON.
func (a *App) show() error {
	out, err := json.MarshalIndent(a.specs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode launch definitions: %w", err)
	}
	_, err = fmt.Fprintln(a.outW, string(out))
	return err
}

// env prints the overlay of a single app as sorted KEY=VALUE lines.
func (a *App) env() error {
	if len(a.specs) != 1 {
		return fmt.Errorf("%d apps loaded; select one with -app", len(a.specs))
	}
	for _, kv := range a.specs[0].Environ(nil) {
		if _, err := fmt.Fprintln(a.outW, kv); err != nil {
			return err
		}
	}
	return nil
}

// launchAll starts every selected app concurrently and waits for them. The
// first failure stops the others. Cancelling ctx is a clean shutdown.
func (a *App) launchAll(ctx context.Context) error {
	if a.config.HealthcheckPort > 0 {
		a.startHealthCheckServer(ctx, a.config.HealthcheckPort)
		defer a.closeHealthCheckServer(ctx)
	}

	a.logger.Info("🚀 Launching apps...", "count", len(a.specs))
	g, gctx := errgroup.WithContext(ctx)
	for _, spec := range a.specs {
		g.Go(func() error {
			_, err := a.launcher.Launch(gctx, spec)
			return err
		})
	}

	err := g.Wait()
	if err != nil && ctx.Err() != nil && launcher.IsStopped(err) {
		a.logger.Info("🏁 Shutdown complete.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("launch failed: %w", err)
	}
	a.logger.Info("🏁 All apps exited.")
	return nil
}

// printHistory prints recent launches as a table.
func (a *App) printHistory(ctx context.Context) error {
	if a.store == nil {
		return errors.New("history database is not configured")
	}

	var (
		entries []history.Entry
		err     error
	)
	if a.config.AppName != "" {
		entries, err = a.store.ByName(ctx, a.config.AppName, a.config.HistoryLimit)
	} else {
		entries, err = a.store.Recent(ctx, a.config.HistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTARTED\tDURATION\tEXIT\tERROR")
	for _, e := range entries {
		duration := time.Duration(e.FinishedAt-e.StartedAt) * time.Millisecond
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.ID, e.Name, e.Started().Format(time.RFC3339), duration, e.ExitCode, e.Error)
	}
	return tw.Flush()
}
