package crypto_test

import (
	"testing"

	"caesar/internal/crypto"
	"caesar/internal/dictionary"
)

func TestFingerprint_Length(t *testing.T) {
	if got := crypto.Fingerprint([]byte("caesar")); len(got) != 20 {
		t.Fatalf("fingerprint %q has length %d, want 20", got, len(got))
	}
}

func TestDictionaryFingerprint_OrderIndependent(t *testing.T) {
	a := dictionary.New([]string{"the", "cat", "sat"})
	b := dictionary.New([]string{"sat", "the", "cat", "cat"})
	c := dictionary.New([]string{"the", "cat", "mat"})

	if crypto.DictionaryFingerprint(a) != crypto.DictionaryFingerprint(b) {
		t.Fatal("same word set should share a fingerprint")
	}
	if crypto.DictionaryFingerprint(a) == crypto.DictionaryFingerprint(c) {
		t.Fatal("different word sets should not collide")
	}
}
