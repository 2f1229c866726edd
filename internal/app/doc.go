// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, builds the logger, loads the
// dictionary once and constructs the stores and services on top of it,
// exposing them via the Wire struct for commands to use.
package app
