package message

import (
	"context"

	"caesar/internal/domain"
)

// Ciphertext is an encrypted message whose shift is unknown.
type Ciphertext struct {
	text string
}

// NewCiphertext wraps text.
func NewCiphertext(text string) Ciphertext { return Ciphertext{text: text} }

// Text returns the ciphertext.
func (c Ciphertext) Text() string { return c.text }

// Decrypt searches every shift with d. Nothing is cached between calls.
func (c Ciphertext) Decrypt(ctx context.Context, d domain.Decrypter) (domain.DecryptionResult, bool, error) {
	return d.Decrypt(ctx, c.text)
}
