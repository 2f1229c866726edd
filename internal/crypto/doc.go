// Package crypto exposes the hashing used to identify word lists.
//
// Contents
//
//   - Short BLAKE2b fingerprints for display/logging (Fingerprint)
//   - Order-independent fingerprints of a dictionary (DictionaryFingerprint)
//
// # Notes
//
// Fingerprints let two runs confirm they scored against the same word list.
// They are identifiers, not integrity guarantees against a malicious editor.
package crypto
