package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/nodelaunch/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// pathList collects repeated or comma-separated path flags.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*p = append(*p, part)
		}
	}
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nodelaunch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
nodelaunch - Declarative launcher for blockchain node processes.

Usage:
  nodelaunch [options] [COMMAND]

Commands:
  show      Print the launch definitions as JSON (default).
  env       Print the environment overlay of one app as KEY=VALUE lines.
  run       Start every selected app and wait for it to exit.
  history   List recent launches from the history database.

Without -config the built-in chainlink definition is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	var configPaths pathList
	flagSet.Var(&configPaths, "config", "Definition file or directory (.hcl/.json). Repeatable or comma-separated.")
	flagSet.Var(&configPaths, "c", "Definition file or directory (shorthand).")
	appFlag := flagSet.String("app", "", "Restrict to a single app by name.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server during run. 0 is disabled.")
	historyDBFlag := flagSet.String("history-db", "", "Path to the SQLite launch history. Empty disables history.")
	historyLimitFlag := flagSet.Int("history-limit", 20, "Number of entries shown by the history command.")
	cleanEnvFlag := flagSet.Bool("clean-env", false, "Start processes with only their overlay environment.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args()[1:])}
	}
	command := strings.ToLower(flagSet.Arg(0))

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Command:         command,
		ConfigPaths:     configPaths,
		AppName:         *appFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
		HistoryDB:       *historyDBFlag,
		HistoryLimit:    *historyLimitFlag,
		CleanEnv:        *cleanEnvFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
