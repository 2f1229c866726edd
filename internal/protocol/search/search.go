package search

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"caesar/internal/dictionary"
	"caesar/internal/domain"
	"caesar/internal/protocol/shift"
)

// Searcher brute-forces the shift space against a dictionary.
type Searcher struct {
	dict    domain.Dictionary
	workers int
	log     zerolog.Logger
}

// Option customises a Searcher.
type Option func(*Searcher)

// WithWorkers bounds how many candidates are scored at once. n <= 0 means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Searcher) { s.workers = n }
}

// WithLogger sets the logger used for debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Searcher) { s.log = log }
}

// New returns a Searcher that scores candidates against dict.
func New(dict domain.Dictionary, opts ...Option) *Searcher {
	s := &Searcher{dict: dict, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return s
}

// Score counts the space-separated tokens of text that are dictionary words.
func Score(d domain.Dictionary, text string) int {
	n := 0
	for _, tok := range strings.Split(text, " ") {
		if dictionary.IsWord(d, tok) {
			n++
		}
	}
	return n
}

// Candidates decrypts ciphertext under all 26 shifts and scores each one.
// The slice is indexed by shift.
func (s *Searcher) Candidates(ctx context.Context, ciphertext string) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, domain.AlphabetSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < domain.AlphabetSize; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := shift.ApplyShift(ciphertext, i)
			if err != nil {
				return fmt.Errorf("shift %d: %w", i, err)
			}
			// Each goroutine owns exactly one slot.
			out[i] = domain.Candidate{Shift: i, Text: text, Score: Score(s.dict, text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Best picks the winning candidate: the lowest shift holding the maximum
// score. ok is false if no candidate scored above zero.
func Best(cands []domain.Candidate) (domain.DecryptionResult, bool) {
	var res domain.DecryptionResult
	best, ok := 0, false
	for _, c := range cands {
		if c.Score > best {
			best = c.Score
			res = domain.DecryptionResult{Shift: c.Shift, Plaintext: c.Text, Score: c.Score}
			ok = true
		}
	}
	return res, ok
}

// Decrypt runs the full search and returns the best decryption.
func (s *Searcher) Decrypt(ctx context.Context, ciphertext string) (domain.DecryptionResult, bool, error) {
	cands, err := s.Candidates(ctx, ciphertext)
	if err != nil {
		return domain.DecryptionResult{}, false, err
	}
	res, ok := Best(cands)
	if !ok {
		s.log.Debug().Msg("no shift produced a dictionary word")
		return domain.DecryptionResult{}, false, nil
	}
	s.log.Debug().Int("shift", res.Shift).Int("score", res.Score).Msg("best shift selected")
	return res, true, nil
}

// Compile-time assertion that Searcher implements domain.Decrypter.
var _ domain.Decrypter = (*Searcher)(nil)
