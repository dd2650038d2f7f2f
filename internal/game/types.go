// internal/game/types.go
//
// Core type definitions for the simulation engine.
// Defines:
//   - Mark: per-letter result of a guess (locked/partial/absent).
//   - WordResult: the five marks for one scored guess.
//   - Turn: one guess with its result.
//   - Session: a finished synthesized game.

package game

import (
	"fmt"

	"github.com/robalobadob/fraudle/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "locked":  letter is correct and in the correct position.
//   - "partial": letter exists in the answer but in a different position.
//   - "absent":  letter is not in the answer (after duplicate accounting).
type Mark string

const (
	MarkLocked  Mark = "locked"
	MarkPartial Mark = "partial"
	MarkAbsent  Mark = "absent"
)

// Valid reports whether m is one of the three known marks.
func (m Mark) Valid() bool {
	switch m {
	case MarkLocked, MarkPartial, MarkAbsent:
		return true
	}
	return false
}

// Unreachable panics for a Mark outside the known set. Every switch over
// Mark ends in a default branch calling it.
func Unreachable(m Mark) {
	panic(fmt.Sprintf("game: unknown mark %q", string(m)))
}

// WordResult is positionally aligned with the Word it scores.
type WordResult [words.Length]Mark

// AllLocked reports whether every position is MarkLocked.
func (r WordResult) AllLocked() bool {
	for _, m := range r {
		if m != MarkLocked {
			return false
		}
	}
	return true
}

// Turn pairs a guess with its score against the session answer.
type Turn struct {
	Guess  words.Word
	Result WordResult
}

// Session holds the state of one synthesized game.
// It is a value: Play returns a new one and nothing mutates it afterwards.
type Session struct {
	Answer   words.Word // The hidden answer every guess is scored against.
	HardMode bool       // True if each guess carries forward the previous result.
	Attempts int        // Number of guesses, the last one winning (2..6).
	Turns    []Turn     // Guesses with results, in play order.
	Rounds   int        // Rounds drawn before a valid one (diagnostic).
}

// Guesses returns the guessed words in order.
func (s Session) Guesses() []words.Word {
	out := make([]words.Word, len(s.Turns))
	for i, t := range s.Turns {
		out[i] = t.Guess
	}
	return out
}

// Results returns the word results in order.
func (s Session) Results() []WordResult {
	out := make([]WordResult, len(s.Turns))
	for i, t := range s.Turns {
		out[i] = t.Result
	}
	return out
}
