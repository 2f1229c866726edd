package domain

import "errors"

// AlphabetSize is the number of letters in each case class; every valid
// shift lies in [0, AlphabetSize).
const AlphabetSize = 26

var (
	// ErrInvalidShift indicates a shift outside [0, AlphabetSize) reached a
	// shifting operation. Callers normalise shifts before use.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrIO indicates the word list or story file could not be read.
	ErrIO = errors.New("io failure")
)

// DecryptionResult is the best-scoring shift found by the decryption search.
type DecryptionResult struct {
	Shift     int
	Plaintext string
	Score     int // number of tokens recognised as words
}

// Candidate is one shift evaluated by the search, whether or not it won.
type Candidate struct {
	Shift int
	Text  string
	Score int
}
