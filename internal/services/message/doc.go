// Package message encrypts plaintext messages and decrypts ciphertext ones.
//
// Plaintext keeps its original text and re-derives the ciphertext whenever
// its shift changes. Ciphertext is immutable and runs the decryption search
// on demand. Service ties both to the word-list and story stores.
package message
