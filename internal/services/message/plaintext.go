package message

import "caesar/internal/protocol/shift"

// Plaintext is a message with a known, changeable shift.
//
// encrypted is always the original text under the current shift; it is
// rebuilt from text, never from the previous ciphertext.
type Plaintext struct {
	text      string
	shift     int
	shiftMap  shift.ShiftMap
	encrypted string
}

// NewPlaintext encrypts text under s, which must be in [0, 26).
func NewPlaintext(text string, s int) (*Plaintext, error) {
	p := &Plaintext{text: text}
	if err := p.ChangeShift(s); err != nil {
		return nil, err
	}
	return p, nil
}

// Text returns the original message.
func (p *Plaintext) Text() string { return p.text }

// Shift returns the current shift.
func (p *Plaintext) Shift() int { return p.shift }

// ShiftMap returns a copy of the current letter mapping.
func (p *Plaintext) ShiftMap() shift.ShiftMap { return p.shiftMap.Clone() }

// Encrypted returns the text under the current shift.
func (p *Plaintext) Encrypted() string { return p.encrypted }

// ChangeShift switches to s and re-encrypts the original text.
// On error the message is left unchanged.
func (p *Plaintext) ChangeShift(s int) error {
	m, err := shift.BuildShiftMap(s)
	if err != nil {
		return err
	}
	p.shift = s
	p.shiftMap = m
	p.encrypted = m.Apply(p.text)
	return nil
}
