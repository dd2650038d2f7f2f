// internal/game/engine.go
//
// Scoring for a single guess against the hidden answer.
//
// Notes:
//   - Score is pure; it is shared by the generator (hard-mode checks) and
//     the session (deriving every result).

package game

import "github.com/robalobadob/fraudle/internal/words"

// Score implements the two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Locked.
//   - Count remaining (non‑locked) answer letters by ordinal.
//
// Pass 2:
//   - For each non‑locked guess letter: if there is remaining count for that
//     letter, mark Partial and decrement the count; otherwise mark Absent.
//
// Each answer letter is claimed at most once, so repeated letters in either
// word are handled correctly.
func Score(guess, answer words.Word) WordResult {
	var res WordResult
	var counts [words.MaxLetters]int

	for i := range guess {
		if guess[i] == answer[i] {
			res[i] = MarkLocked
		} else {
			counts[answer[i]]++
		}
	}

	for i := range guess {
		if res[i] == MarkLocked {
			continue
		}
		if c := guess[i]; counts[c] > 0 {
			res[i] = MarkPartial
			counts[c]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}
