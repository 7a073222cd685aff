package config

import "context"

// Loader is the interface for a format-specific definition loader.
type Loader interface {
	// Load reads definition files from the given paths (files or
	// directories), translates them into the format-agnostic model, and
	// merges them into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
