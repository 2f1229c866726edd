// Package shift implements the Caesar rotation used by caesar.
//
// # Overview
//
// A shift s in [0, 26) rotates every ASCII letter s places down its own
// alphabet, wrapping from 'z' to 'a' and from 'Z' to 'A'. Case is preserved
// and every other byte passes through untouched, so ApplyShift never changes
// the length or layout of a text.
//
// # Functions
//
//   - ShiftLetter rotates a single rune.
//   - BuildShiftMap precomputes all 52 letter mappings for one shift.
//   - ApplyShift encrypts (or, with the inverse shift, decrypts) a whole text.
//   - Normalize and Inverse bring arbitrary integers into the valid range.
//
// # Errors
//
// Shifts outside [0, 26) yield domain.ErrInvalidShift. Callers are expected
// to Normalize user input first; the error marks a programming mistake.
package shift
