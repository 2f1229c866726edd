package store

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"caesar/internal/dictionary"
	"caesar/internal/domain"
)

// WordListFileStore loads dictionaries from word-list files.
//
// A word list holds whitespace-separated lowercase words on its first line;
// anything after the first newline is ignored.
type WordListFileStore struct {
	log zerolog.Logger
}

// NewWordListFileStore returns a WordListFileStore that reports progress to log.
func NewWordListFileStore(log zerolog.Logger) *WordListFileStore {
	return &WordListFileStore{log: log}
}

// LoadWordList reads path and builds a dictionary from its first line.
func (s *WordListFileStore) LoadWordList(path string) (domain.Dictionary, error) {
	s.log.Info().Str("path", path).Msg("loading word list")

	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("load word list %s: %w", path, err)
	}
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	d := dictionary.New(strings.Fields(string(b)))

	s.log.Info().Int("words", d.Len()).Msg("words loaded")
	return d, nil
}

// Compile-time assertion that WordListFileStore implements domain.WordListStore.
var _ domain.WordListStore = (*WordListFileStore)(nil)
