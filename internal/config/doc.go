// Package config defines the format-agnostic model for a behavior
// definition, along with the Loader interface for reading it from various
// sources.
//
// The config.Model is the single source of truth for the builder package.
// Concrete Loader implementations, such as for HCL and YAML, are provided
// in separate packages.
package config
