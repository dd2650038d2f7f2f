// internal/game/session.go
//
// Session synthesis: a full fake game that wins on the chosen attempt.
//
// State transitions of one round:
//   - draw attempts-1 guesses, scoring each against the answer;
//   - append the answer itself as the winning guess;
//   - keep the round only if no earlier guess already won.
//
// Invalid rounds are discarded and redrawn. The loop terminates almost surely;
// MaxRounds turns it into a hard ceiling.

package game

import (
	"fmt"

	"github.com/robalobadob/fraudle/internal/words"
)

const (
	MinAttempts = 2
	MaxAttempts = 6
)

// Play synthesizes a valid session against answer.
// attempts outside [MinAttempts, MaxAttempts] is rejected before any drawing.
func (g *Generator) Play(answer words.Word, attempts int, hardMode bool) (Session, error) {
	if attempts < MinAttempts || attempts > MaxAttempts {
		return Session{}, fmt.Errorf("%w: got %d", ErrInvalidAttempts, attempts)
	}
	for rounds := 1; ; rounds++ {
		if g.MaxRounds > 0 && rounds > g.MaxRounds {
			return Session{}, fmt.Errorf("%w: no valid session in %d rounds", ErrTooManyRounds, g.MaxRounds)
		}
		turns, ok, err := g.round(answer, attempts, hardMode)
		if err != nil {
			return Session{}, err
		}
		if !ok {
			continue
		}
		return Session{
			Answer:   answer,
			HardMode: hardMode,
			Attempts: attempts,
			Turns:    turns,
			Rounds:   rounds,
		}, nil
	}
}

// round draws one candidate game. ok is false when a non-final guess already
// won; the round is abandoned at that point.
func (g *Generator) round(answer words.Word, attempts int, hardMode bool) ([]Turn, bool, error) {
	turns := make([]Turn, 0, attempts)
	var prev *Turn
	for i := 0; i < attempts-1; i++ {
		guess, err := g.NextGuess(answer, prev, hardMode)
		if err != nil {
			return nil, false, err
		}
		t := Turn{Guess: guess, Result: Score(guess, answer)}
		if t.Result.AllLocked() {
			return nil, false, nil
		}
		turns = append(turns, t)
		prev = &turns[len(turns)-1]
	}
	turns = append(turns, Turn{Guess: answer, Result: Score(answer, answer)})
	return turns, true, nil
}

// Valid reports whether s is internally consistent: attempts in range, one
// result per guess matching the answer, a single win on the last turn, and
// hard-mode carry-forward between consecutive turns.
func (s Session) Valid() bool {
	if s.Attempts < MinAttempts || s.Attempts > MaxAttempts || len(s.Turns) != s.Attempts {
		return false
	}
	last := len(s.Turns) - 1
	for i, t := range s.Turns {
		if t.Result != Score(t.Guess, s.Answer) {
			return false
		}
		if t.Result.AllLocked() != (i == last) {
			return false
		}
		if s.HardMode && i > 0 && !SatisfiesHardMode(t.Guess, s.Answer, s.Turns[i-1]) {
			return false
		}
	}
	return true
}
