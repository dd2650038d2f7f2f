// internal/render/render.go
//
// Text rendering of a finished session as the shareable emoji grid.
//
// Output:
//
//	Wordle 196 3/6*
//
//	⬜🟨⬜⬜🟩
//	🟨🟩⬜🟩🟩
//	🟩🟩🟩🟩🟩

package render

import (
	"fmt"
	"strings"

	"github.com/robalobadob/fraudle/internal/game"
)

const (
	Green  = "🟩"
	Yellow = "🟨"
	Gray   = "⬜"
)

// Header is the first line of the shared text.
type Header struct {
	Puzzle   int  // Day number since the puzzle epoch.
	Attempts int  // Winning attempt, printed as N/6.
	HardMode bool // Adds the trailing '*'.
}

// String formats the header line, e.g. "Wordle 196 3/6*".
func (h Header) String() string {
	marker := ""
	if h.HardMode {
		marker = "*"
	}
	return fmt.Sprintf("Wordle %d %d/6%s", h.Puzzle, h.Attempts, marker)
}

// Symbol maps a mark to its square.
func Symbol(m game.Mark) string {
	switch m {
	case game.MarkLocked:
		return Green
	case game.MarkPartial:
		return Yellow
	case game.MarkAbsent:
		return Gray
	default:
		game.Unreachable(m)
		return ""
	}
}

// Row renders one result as five squares.
func Row(r game.WordResult) string {
	var b strings.Builder
	for _, m := range r {
		b.WriteString(Symbol(m))
	}
	return b.String()
}

// Rows renders every result, order preserved.
func Rows(results []game.WordResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = Row(r)
	}
	return out
}

// Text renders the header, a blank line, and one row per result.
func Text(results []game.WordResult, h Header) string {
	return h.String() + "\n\n" + strings.Join(Rows(results), "\n")
}
