package crypto

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}

// SortedWords is satisfied by dictionaries that can list their words in order.
type SortedWords interface {
	Words() []string
}

// DictionaryFingerprint fingerprints the sorted word set of d, so the result
// does not depend on file order or duplicates.
func DictionaryFingerprint(d SortedWords) string {
	return Fingerprint([]byte(strings.Join(d.Words(), "\n")))
}
