// Package cli handles command-line argument parsing and validation, turning
// raw arguments into an app.Config.
package cli
