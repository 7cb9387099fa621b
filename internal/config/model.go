package config

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// envKeyPattern matches a portable environment variable identifier.
var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LaunchSpec describes how to start one managed process. Values are treated
// as immutable once a loader returns them; use Clone before modifying Env.
type LaunchSpec struct {
	Command string            `json:"command"`
	Name    string            `json:"name"`
	Env     map[string]string `json:"env"`
}

// Validate checks the record invariants and reports the first violation as a
// *ConfigurationError. Env keys are checked in sorted order so the reported
// key is stable.
func (s LaunchSpec) Validate() error {
	if strings.TrimSpace(s.Command) == "" {
		return &ConfigurationError{App: s.Name, Field: "command", Err: ErrMissingCommand}
	}
	if strings.TrimSpace(s.Name) == "" {
		return &ConfigurationError{Field: "name", Err: ErrMissingName}
	}
	for _, key := range s.EnvKeys() {
		if !IsValidEnvKey(key) {
			return &ConfigurationError{App: s.Name, Field: "env." + key, Err: ErrInvalidEnvKey}
		}
	}
	return nil
}

// Clone returns a deep copy of the record.
func (s LaunchSpec) Clone() LaunchSpec {
	out := s
	if s.Env != nil {
		out.Env = maps.Clone(s.Env)
	}
	return out
}

// Equal reports whether both records carry the same values.
func (s LaunchSpec) Equal(other LaunchSpec) bool {
	return s.Command == other.Command &&
		s.Name == other.Name &&
		maps.Equal(s.Env, other.Env)
}

// Args splits Command on whitespace. The first element is the executable.
func (s LaunchSpec) Args() []string {
	return strings.Fields(s.Command)
}

// EnvKeys returns the overlay keys in sorted order.
func (s LaunchSpec) EnvKeys() []string {
	return slices.Sorted(maps.Keys(s.Env))
}

// IsValidEnvKey reports whether key can be used as an environment variable name.
func IsValidEnvKey(key string) bool {
	return envKeyPattern.MatchString(key)
}
