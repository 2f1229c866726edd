// Package commands defines the caesar CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt      Encrypt text under a known shift
//   - decrypt      Recover plaintext without the shift
//   - demo         Encrypt a sample phrase, then decrypt the story file
//   - fingerprint  Print the word-list size and fingerprint
//
// # Implementation
//
// The root command reads Config from the environment, lets explicitly set
// flags override it, and builds the logger. Commands that score candidates
// are annotated so the word list is loaded exactly once before they run;
// encrypt never touches it.
package commands
