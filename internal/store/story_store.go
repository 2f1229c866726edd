package store

import (
	"fmt"

	"caesar/internal/domain"
)

// StoryFileStore reads ciphertext stories.
type StoryFileStore struct{}

// NewStoryFileStore returns a StoryFileStore.
func NewStoryFileStore() *StoryFileStore { return &StoryFileStore{} }

// ReadStory returns the contents of path unchanged, newlines included.
func (StoryFileStore) ReadStory(path string) (string, error) {
	b, err := readFile(path)
	if err != nil {
		return "", fmt.Errorf("read story %s: %w", path, err)
	}
	return string(b), nil
}

// Compile-time assertion that StoryFileStore implements domain.StoryStore.
var _ domain.StoryStore = StoryFileStore{}
