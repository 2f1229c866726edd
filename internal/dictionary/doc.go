// Package dictionary holds the immutable word set and the word validator
// used to score candidate decryptions.
package dictionary
