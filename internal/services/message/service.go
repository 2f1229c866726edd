package message

import (
	"context"

	"caesar/internal/domain"
	"caesar/internal/protocol/shift"
)

// Service encrypts user text and decrypts stories read from disk.
type Service struct {
	stories   domain.StoryStore
	decrypter domain.Decrypter
}

// New constructs a message Service.
func New(stories domain.StoryStore, decrypter domain.Decrypter) *Service {
	return &Service{stories: stories, decrypter: decrypter}
}

// Encrypt builds a Plaintext for text. Any integer shift is accepted and
// normalised into [0, 26) first.
func (s *Service) Encrypt(text string, n int) (*Plaintext, error) {
	return NewPlaintext(text, shift.Normalize(n))
}

// Decrypt recovers the plaintext of text.
func (s *Service) Decrypt(ctx context.Context, text string) (Ciphertext, domain.DecryptionResult, bool, error) {
	c := NewCiphertext(text)
	res, ok, err := c.Decrypt(ctx, s.decrypter)
	return c, res, ok, err
}

// DecryptStory reads the story at path and decrypts it.
func (s *Service) DecryptStory(ctx context.Context, path string) (Ciphertext, domain.DecryptionResult, bool, error) {
	text, err := s.stories.ReadStory(path)
	if err != nil {
		return Ciphertext{}, domain.DecryptionResult{}, false, err
	}
	return s.Decrypt(ctx, text)
}
