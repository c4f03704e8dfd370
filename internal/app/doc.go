// Package app wires application dependencies for the CLI.
//
// It resolves transcript parameters from defaults, an optional YAML
// profile and command-line flags, and builds the transfer service from
// Config, exposing it via the Wire struct for commands to use.
package app
