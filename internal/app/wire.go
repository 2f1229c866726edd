package app

import (
	"github.com/rs/zerolog"

	"caesar/internal/crypto"
	"caesar/internal/domain"
	"caesar/internal/protocol/search"
	messagesvc "caesar/internal/services/message"
	"caesar/internal/store"
)

// Wire bundles the dictionary, stores and services for the CLI.
type Wire struct {
	Dictionary  domain.Dictionary
	Fingerprint string
	Words       domain.WordListStore
	Stories     domain.StoryStore
	Search      *search.Searcher
	Messages    *messagesvc.Service
	Log         zerolog.Logger
}

// NewWire loads the word list named by cfg and constructs the dependency graph.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	// File-based stores
	words := store.NewWordListFileStore(log)
	stories := store.NewStoryFileStore()

	dict, err := words.LoadWordList(cfg.WordsPath)
	if err != nil {
		return nil, err
	}

	var fp string
	if sw, ok := dict.(crypto.SortedWords); ok {
		fp = crypto.DictionaryFingerprint(sw)
	}

	searcher := search.New(dict, search.WithWorkers(cfg.Workers), search.WithLogger(log))

	return &Wire{
		Dictionary:  dict,
		Fingerprint: fp,
		Words:       words,
		Stories:     stories,
		Search:      searcher,
		Messages:    messagesvc.New(stories, searcher),
		Log:         log,
	}, nil
}
