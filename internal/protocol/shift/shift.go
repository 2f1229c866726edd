package shift

import (
	"fmt"
	"maps"

	"caesar/internal/domain"
)

const (
	lower = "abcdefghijklmnopqrstuvwxyz"
	upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ShiftMap maps each of the 52 ASCII letters to its rotated counterpart.
// It is never mutated after BuildShiftMap returns it.
type ShiftMap map[rune]rune

// Normalize brings any integer shift into [0, 26).
func Normalize(shift int) int {
	return ((shift % domain.AlphabetSize) + domain.AlphabetSize) % domain.AlphabetSize
}

// Inverse returns the shift that undoes shift.
func Inverse(shift int) int {
	return Normalize(domain.AlphabetSize - Normalize(shift))
}

func validate(shift int) error {
	if shift < 0 || shift >= domain.AlphabetSize {
		return fmt.Errorf("%w: %d not in [0,%d)", domain.ErrInvalidShift, shift, domain.AlphabetSize)
	}
	return nil
}

// ShiftLetter rotates r by shift places within its case class.
// Non-letters are returned unchanged.
func ShiftLetter(r rune, shift int) (rune, error) {
	if err := validate(shift); err != nil {
		return r, err
	}
	return rotate(r, shift), nil
}

func rotate(r rune, shift int) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return rune(lower[(int(r-'a')+shift)%domain.AlphabetSize])
	case r >= 'A' && r <= 'Z':
		return rune(upper[(int(r-'A')+shift)%domain.AlphabetSize])
	default:
		return r
	}
}

// BuildShiftMap precomputes the rotation of every letter for shift.
func BuildShiftMap(shift int) (ShiftMap, error) {
	if err := validate(shift); err != nil {
		return nil, err
	}
	m := make(ShiftMap, 2*domain.AlphabetSize)
	for _, r := range lower + upper {
		m[r] = rotate(r, shift)
	}
	return m, nil
}

// Apply maps every letter of text through m.
//
// Only ASCII letters are keys, and no byte of a multi-byte UTF-8 sequence
// falls in that range, so the text is rewritten byte by byte.
func (m ShiftMap) Apply(text string) string {
	b := []byte(text)
	for i, c := range b {
		if r, ok := m[rune(c)]; ok {
			b[i] = byte(r)
		}
	}
	return string(b)
}

// Clone returns an independent copy of m.
func (m ShiftMap) Clone() ShiftMap {
	return maps.Clone(m)
}

// ApplyShift returns text with every letter rotated by shift.
func ApplyShift(text string, shift int) (string, error) {
	m, err := BuildShiftMap(shift)
	if err != nil {
		return "", err
	}
	return m.Apply(text), nil
}
