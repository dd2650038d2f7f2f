// internal/game/generator.go
//
// Guess generation, plain and hard mode.
//
// Hard mode only carries forward the previous turn: locked positions stay
// locked and partial letters reappear somewhere. Letters already known to be
// absent may be reused.

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/fraudle/internal/words"
)

// DefaultMaxTries bounds the hard-mode rejection sampler.
const DefaultMaxTries = 1_000_000

var (
	// ErrConstraintExhausted is returned when no hard-mode candidate was found
	// within MaxTries draws.
	ErrConstraintExhausted = errors.New("game: hard-mode constraint exhausted")
	ErrInvalidAttempts     = errors.New("game: attempts must be between 2 and 6")
	// ErrTooManyRounds is returned when MaxRounds is set and no valid session
	// was drawn within it.
	ErrTooManyRounds = errors.New("game: too many rounds")
)

// Generator draws words from an alphabet using an injected source.
type Generator struct {
	alphabet words.Alphabet
	src      words.Source

	// MaxTries caps hard-mode candidates per guess. Zero means DefaultMaxTries.
	MaxTries int
	// MaxRounds caps session rounds in Play. Zero means unbounded.
	MaxRounds int
}

// NewGenerator constructs a Generator. src must be safe for concurrent use if
// the Generator is shared.
func NewGenerator(alphabet words.Alphabet, src words.Source) *Generator {
	return &Generator{alphabet: alphabet, src: src, MaxTries: DefaultMaxTries}
}

// Alphabet returns the alphabet guesses are drawn from.
func (g *Generator) Alphabet() words.Alphabet { return g.alphabet }

// RandomWord draws a uniformly random word.
func (g *Generator) RandomWord() words.Word {
	return g.alphabet.RandomWord(g.src)
}

// NewAnswer draws a uniformly random answer for a fresh session.
func (g *Generator) NewAnswer() words.Word {
	return g.RandomWord()
}

// NextGuess returns the next guess for a game against answer.
// With hardMode off, or no previous turn, it is a plain random word.
// Otherwise candidates are drawn until one satisfies SatisfiesHardMode;
// after MaxTries failures ErrConstraintExhausted is returned.
func (g *Generator) NextGuess(answer words.Word, prev *Turn, hardMode bool) (words.Word, error) {
	if !hardMode || prev == nil {
		return g.RandomWord(), nil
	}
	limit := g.MaxTries
	if limit <= 0 {
		limit = DefaultMaxTries
	}
	for tries := 0; tries < limit; tries++ {
		candidate := g.RandomWord()
		if SatisfiesHardMode(candidate, answer, *prev) {
			return candidate, nil
		}
	}
	return words.Word{}, fmt.Errorf("%w: after %d tries following %s", ErrConstraintExhausted, limit, prev.Guess)
}

// SatisfiesHardMode checks candidate against the previous turn, position by
// position:
//   - Locked:  candidate must also score Locked there against answer.
//   - Partial: the previous letter must appear anywhere in candidate.
//   - Absent:  no constraint.
func SatisfiesHardMode(candidate, answer words.Word, prev Turn) bool {
	rescored := Score(candidate, answer)
	for p, m := range prev.Result {
		switch m {
		case MarkLocked:
			if rescored[p] != MarkLocked {
				return false
			}
		case MarkPartial:
			if !candidate.Contains(prev.Guess[p]) {
				return false
			}
		case MarkAbsent:
		default:
			Unreachable(m)
		}
	}
	return true
}
