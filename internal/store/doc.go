// Package store provides file-based access to caesar's inputs and outputs.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Word lists (WordListFileStore), read once at startup into a dictionary
//   - Ciphertext stories (StoryFileStore), returned verbatim
//
// WriteText saves CLI output atomically via a temp file and rename.
// Read failures wrap domain.ErrIO so callers can tell them apart from
// programming errors.
package store
