package shift_test

import (
	"errors"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"

	"caesar/internal/domain"
	"caesar/internal/protocol/shift"
)

func TestShiftLetter_Examples(t *testing.T) {
	cases := []struct {
		in    rune
		shift int
		want  rune
	}{
		{'z', 1, 'a'},
		{'Z', 1, 'A'},
		{'!', 5, '!'},
		{'a', 0, 'a'},
		{'a', 25, 'z'},
		{'M', 13, 'Z'},
		{'é', 3, 'é'},
	}
	for _, c := range cases {
		got, err := shift.ShiftLetter(c.in, c.shift)
		if err != nil {
			t.Fatalf("ShiftLetter(%q, %d): %v", c.in, c.shift, err)
		}
		if got != c.want {
			t.Fatalf("ShiftLetter(%q, %d) = %q, want %q", c.in, c.shift, got, c.want)
		}
	}
}

func TestShiftLetter_InvalidShift(t *testing.T) {
	for _, s := range []int{-1, 26, 100} {
		if _, err := shift.ShiftLetter('a', s); !errors.Is(err, domain.ErrInvalidShift) {
			t.Fatalf("shift %d: want ErrInvalidShift, got %v", s, err)
		}
		if _, err := shift.BuildShiftMap(s); !errors.Is(err, domain.ErrInvalidShift) {
			t.Fatalf("BuildShiftMap(%d): want ErrInvalidShift, got %v", s, err)
		}
		if _, err := shift.ApplyShift("abc", s); !errors.Is(err, domain.ErrInvalidShift) {
			t.Fatalf("ApplyShift(%d): want ErrInvalidShift, got %v", s, err)
		}
	}
}

func TestNormalizeAndInverse(t *testing.T) {
	cases := []struct{ in, norm, inv int }{
		{0, 0, 0},
		{3, 3, 23},
		{26, 0, 0},
		{-1, 25, 1},
		{-27, 25, 1},
		{53, 1, 25},
	}
	for _, c := range cases {
		if got := shift.Normalize(c.in); got != c.norm {
			t.Fatalf("Normalize(%d) = %d, want %d", c.in, got, c.norm)
		}
		if got := shift.Inverse(c.in); got != c.inv {
			t.Fatalf("Inverse(%d) = %d, want %d", c.in, got, c.inv)
		}
	}
}

func TestBuildShiftMap_MatchesShiftLetter(t *testing.T) {
	var all []rune
	for r := rune(0); r < 128; r++ {
		all = append(all, r)
	}
	for s := 0; s < domain.AlphabetSize; s++ {
		m, err := shift.BuildShiftMap(s)
		if err != nil {
			t.Fatalf("BuildShiftMap(%d): %v", s, err)
		}
		if len(m) != 52 {
			t.Fatalf("shift %d: map has %d keys, want 52", s, len(m))
		}
		for _, r := range all {
			want, _ := shift.ShiftLetter(r, s)
			got := []rune(m.Apply(string(r)))[0]
			if got != want {
				t.Fatalf("shift %d rune %q: map gives %q, ShiftLetter gives %q", s, r, got, want)
			}
		}
	}
}

func TestBuildShiftMap_IsCaseClassBijection(t *testing.T) {
	for s := 0; s < domain.AlphabetSize; s++ {
		m, _ := shift.BuildShiftMap(s)
		seen := make(map[rune]bool, len(m))
		for k, v := range m {
			if unicode.IsUpper(k) != unicode.IsUpper(v) {
				t.Fatalf("shift %d: %q -> %q changes case", s, k, v)
			}
			if seen[v] {
				t.Fatalf("shift %d: %q has two preimages", s, v)
			}
			seen[v] = true
		}
	}
}

func TestShiftMap_CloneIsIndependent(t *testing.T) {
	m, _ := shift.BuildShiftMap(4)
	c := m.Clone()
	c['a'] = 'q'
	if m['a'] != 'e' {
		t.Fatalf("clone mutation leaked into original: %q", m['a'])
	}
}

func TestApplyShift_Example(t *testing.T) {
	got, err := shift.ApplyShift("the cat sat", 3)
	if err != nil {
		t.Fatalf("ApplyShift: %v", err)
	}
	if got != "wkh fdw vdw" {
		t.Fatalf("got %q, want %q", got, "wkh fdw vdw")
	}
}

func TestApplyShift_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"Random Phrase",
		"Hello, World! 123\n\ttabs  and  spaces",
		"naïve café — unicode stays put",
		"ZzAa",
	}
	for _, text := range texts {
		for s := 0; s < domain.AlphabetSize; s++ {
			enc, err := shift.ApplyShift(text, s)
			if err != nil {
				t.Fatalf("encrypt: %v", err)
			}
			if len(enc) != len(text) {
				t.Fatalf("shift %d changed length: %d -> %d", s, len(text), len(enc))
			}
			dec, err := shift.ApplyShift(enc, shift.Inverse(s))
			if err != nil {
				t.Fatalf("decrypt: %v", err)
			}
			if diff := cmp.Diff(text, dec); diff != "" {
				t.Fatalf("round trip shift %d (-want +got):\n%s", s, diff)
			}
		}
	}
}

func TestApplyShift_PreservesNonLetters(t *testing.T) {
	text := "It's 9:41 - ok?"
	enc, err := shift.ApplyShift(text, 7)
	if err != nil {
		t.Fatalf("ApplyShift: %v", err)
	}
	in, out := []rune(text), []rune(enc)
	for i := range in {
		isLetter := unicode.IsLetter(in[i])
		if isLetter != unicode.IsLetter(out[i]) {
			t.Fatalf("position %d: letter class changed %q -> %q", i, in[i], out[i])
		}
		if !isLetter && in[i] != out[i] {
			t.Fatalf("position %d: non-letter %q became %q", i, in[i], out[i])
		}
		if isLetter && unicode.IsUpper(in[i]) != unicode.IsUpper(out[i]) {
			t.Fatalf("position %d: case changed %q -> %q", i, in[i], out[i])
		}
	}
}
