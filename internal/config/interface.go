package config

import "context"

// Loader is the interface for a definition source.
type Loader interface {
	// Load materializes every launch record reachable from the given paths.
	// Sources that are not file based may ignore paths entirely.
	Load(ctx context.Context, paths ...string) ([]LaunchSpec, error)
}
