package ecosystem

import (
	"context"
	"errors"

	"github.com/specialistvlad/nodelaunch/internal/config"
	"github.com/specialistvlad/nodelaunch/internal/ctxlog"
)

// Build materializes def into launch records. Env entries are applied in
// order, so a repeated key takes its last value. Every record is validated
// and the first failure is returned with no partial result.
func Build(def Definition, source string) ([]config.LaunchSpec, error) {
	specs := make([]config.LaunchSpec, 0, len(def.Apps))
	seen := make(map[string]struct{}, len(def.Apps))

	for _, app := range def.Apps {
		env := make(map[string]string, len(app.Env))
		for _, kv := range app.Env {
			env[kv.Key] = kv.Value
		}
		spec := config.LaunchSpec{
			Command: app.Script,
			Name:    app.Name,
			Env:     env,
		}

		if err := spec.Validate(); err != nil {
			var cfgErr *config.ConfigurationError
			if errors.As(err, &cfgErr) {
				return nil, cfgErr.WithSource(source)
			}
			return nil, err
		}
		if _, dup := seen[spec.Name]; dup {
			return nil, &config.ConfigurationError{Source: source, App: spec.Name, Field: "name", Err: config.ErrDuplicateApp}
		}
		seen[spec.Name] = struct{}{}

		specs = append(specs, spec)
	}
	return specs, nil
}

// DuplicateKeys returns the env keys that app defines more than once, in the
// order their second definition appears.
func DuplicateKeys(app App) []string {
	count := make(map[string]int, len(app.Env))
	var dups []string
	for _, kv := range app.Env {
		count[kv.Key]++
		if count[kv.Key] == 2 {
			dups = append(dups, kv.Key)
		}
	}
	return dups
}

// Load returns the launch records of the built-in definition.
func Load() ([]config.LaunchSpec, error) {
	return Build(Default(), SourceName)
}

// Loader is the config.Loader for the built-in definition.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a loader for the built-in definition.
func NewLoader() *Loader {
	return &Loader{}
}

// Load ignores paths and returns the built-in records. Repeated env keys are
// logged so an authoring mistake is visible even though the last value wins.
func (l *Loader) Load(ctx context.Context, _ ...string) ([]config.LaunchSpec, error) {
	logger := ctxlog.FromContext(ctx)
	def := Default()

	for _, app := range def.Apps {
		if dups := DuplicateKeys(app); len(dups) > 0 {
			logger.Warn("Env key defined more than once; last value wins.", "app", app.Name, "keys", dups)
		}
	}

	specs, err := Build(def, SourceName)
	if err != nil {
		return nil, err
	}
	logger.Debug("Built-in definition loaded.", "apps", len(specs))
	return specs, nil
}
