package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest file reachable from paths and merges them
	// into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
