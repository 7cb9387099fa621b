package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingCommand = errors.New("command must not be empty")
	ErrMissingName    = errors.New("name must not be empty")
	ErrInvalidEnvKey  = errors.New("not a valid environment variable name")
	ErrInvalidValue   = errors.New("value must be a string")
	ErrDuplicateApp   = errors.New("app is defined more than once")
	ErrMalformed      = errors.New("definition is malformed")
)

// ConfigurationError reports a structurally invalid launch definition. It is
// the only error kind a Loader returns for bad input, and it is always fatal:
// there is no default launch record to fall back to.
type ConfigurationError struct {
	Source string // definition or file the record came from
	App    string
	Field  string
	Err    error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Source != "" {
		fmt.Fprintf(&b, " in %s", e.Source)
	}

	var where []string
	if e.App != "" {
		where = append(where, fmt.Sprintf("app %q", e.App))
	}
	if e.Field != "" {
		where = append(where, fmt.Sprintf("field %q", e.Field))
	}
	if len(where) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(where, ", "))
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// WithSource returns a copy of the error attributed to source, unless a
// source is already set.
func (e *ConfigurationError) WithSource(source string) *ConfigurationError {
	out := *e
	if out.Source == "" {
		out.Source = source
	}
	return &out
}

// IsConfigurationError reports whether err, or anything it wraps, is a
// *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
