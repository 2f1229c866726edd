package domain

import "context"

// Dictionary is a read-only set of lowercase words.
type Dictionary interface {
	Contains(word string) bool
	Len() int
}

// Decrypter recovers plaintext from Caesar ciphertext without a key.
//
// ok is false when no shift produced a single dictionary word; that is a
// valid outcome, not an error.
type Decrypter interface {
	Decrypt(ctx context.Context, ciphertext string) (res DecryptionResult, ok bool, err error)
}

// WordListStore loads the dictionary used to score candidate decryptions.
type WordListStore interface {
	LoadWordList(path string) (Dictionary, error)
}

// StoryStore reads ciphertext stories from disk.
type StoryStore interface {
	ReadStory(path string) (string, error)
}
