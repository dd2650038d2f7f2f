// internal/words/words.go
//
// Letter and word model for the grid generator.
//
// Responsibilities:
//   - Define the letter domain (an Alphabet of 2..26 ordinals).
//   - Define the fixed-length Word value type.
//   - Draw random words from an injected Source.
//   - Parse and print words in their lowercase a–z form.
//
// Notes:
//   - Letters carry no meaning beyond identity; there is no dictionary.
//   - The default alphabet has 10 letters (a–j).

package words

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Length is the number of letters in every Word.
	Length = 5
	// MaxLetters is the size of the full a–z alphabet.
	MaxLetters = 26
	// DefaultSize is the alphabet size used when none is configured.
	DefaultSize = 10
)

var (
	ErrInvalidAlphabet = errors.New("words: invalid alphabet size")
	ErrInvalidWord     = errors.New("words: invalid word")
)

// Letter is an ordinal in an Alphabet. Letter 0 prints as 'a'.
type Letter uint8

// Rune returns the lowercase letter for l.
func (l Letter) Rune() rune { return rune('a' + l) }

// Word is an ordered sequence of exactly Length letters.
type Word [Length]Letter

// String renders w as lowercase letters, e.g. "cabje".
func (w Word) String() string {
	var b strings.Builder
	b.Grow(Length)
	for _, l := range w {
		b.WriteRune(l.Rune())
	}
	return b.String()
}

// Contains reports whether l occurs anywhere in w.
func (w Word) Contains(l Letter) bool {
	for _, x := range w {
		if x == l {
			return true
		}
	}
	return false
}

// Alphabet is the fixed set of letters words are drawn from.
type Alphabet struct {
	size int
}

// NewAlphabet returns an alphabet of the first size letters of a–z.
// Sizes below 2 are rejected: with a single letter every guess is the answer.
func NewAlphabet(size int) (Alphabet, error) {
	if size < 2 || size > MaxLetters {
		return Alphabet{}, fmt.Errorf("%w: %d (want 2..%d)", ErrInvalidAlphabet, size, MaxLetters)
	}
	return Alphabet{size: size}, nil
}

// Default returns the 10-letter alphabet.
func Default() Alphabet { return Alphabet{size: DefaultSize} }

// Size reports how many letters the alphabet holds.
func (a Alphabet) Size() int { return a.size }

// Has reports whether l belongs to the alphabet.
func (a Alphabet) Has(l Letter) bool { return int(l) < a.size }

// RandomLetter draws one letter uniformly.
func (a Alphabet) RandomLetter(src Source) Letter {
	return Letter(src.IntN(a.size))
}

// RandomWord draws Length letters independently and uniformly.
func (a Alphabet) RandomWord(src Source) Word {
	var w Word
	for i := range w {
		w[i] = a.RandomLetter(src)
	}
	return w
}

// Parse converts a lowercase (or mixed case) string into a Word.
// Every letter must belong to the alphabet.
func (a Alphabet) Parse(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Length {
		return w, fmt.Errorf("%w: %q must be %d letters", ErrInvalidWord, s, Length)
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < 'a' || c > 'z' || !a.Has(Letter(c-'a')) {
			return w, fmt.Errorf("%w: %q is outside the %d-letter alphabet", ErrInvalidWord, c, a.size)
		}
		w[i] = Letter(c - 'a')
	}
	return w, nil
}
