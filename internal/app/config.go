package app

import (
	"errors"
	"fmt"
	"slices"
)

// Commands the App can execute.
const (
	CommandShow    = "show"
	CommandEnv     = "env"
	CommandRun     = "run"
	CommandHistory = "history"
)

var commands = []string{CommandShow, CommandEnv, CommandRun, CommandHistory}

const defaultHistoryLimit = 20

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command     string
	ConfigPaths []string // hcl/json definitions; empty selects the built-in one
	AppName     string   // restricts the loaded apps to one

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	HistoryDB       string
	HistoryLimit    int
	CleanEnv        bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		cfg.Command = CommandShow
	}
	if !slices.Contains(commands, cfg.Command) {
		return nil, fmt.Errorf("unknown command %q: must be one of %v", cfg.Command, commands)
	}
	if cfg.Command == CommandHistory && cfg.HistoryDB == "" {
		return nil, errors.New("the history command requires -history-db")
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &cfg, nil
}
