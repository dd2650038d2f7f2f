// internal/daily/daily.go
//
// Calendar helpers: date keys and the puzzle day number.

package daily

import "time"

// Epoch is the day of puzzle number 0.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// Clock supplies the current time; tests pass a fixed one.
type Clock func() time.Time

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleNumber returns the number of whole calendar days between Epoch and
// t's date in t's own location. Dates before Epoch give negative numbers.
func PuzzleNumber(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Epoch).Hours() / 24)
}

// Today returns the puzzle number for clock's current time.
func (c Clock) Today() int {
	if c == nil {
		return PuzzleNumber(time.Now())
	}
	return PuzzleNumber(c())
}
