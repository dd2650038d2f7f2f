package daily

import (
	"testing"
	"time"
)

func TestPuzzleNumber(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{name: "epoch", t: time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "end of epoch day", t: time.Date(2021, 6, 19, 23, 59, 59, 0, time.UTC), want: 0},
		{name: "next day", t: time.Date(2021, 6, 20, 0, 0, 1, 0, time.UTC), want: 1},
		{name: "new year 2022", t: time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC), want: 196},
		{name: "local date wins", t: time.Date(2022, 1, 1, 23, 30, 0, 0, est), want: 196},
		{name: "before epoch", t: time.Date(2021, 6, 18, 8, 0, 0, 0, time.UTC), want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PuzzleNumber(tt.t); got != tt.want {
				t.Fatalf("PuzzleNumber(%s) = %d, want %d", tt.t, got, tt.want)
			}
		})
	}
}

func TestClockToday(t *testing.T) {
	c := Clock(func() time.Time { return time.Date(2021, 7, 19, 9, 0, 0, 0, time.UTC) })
	if got := c.Today(); got != 30 {
		t.Fatalf("Today() = %d, want 30", got)
	}
	var zero Clock
	if got := zero.Today(); got < 196 {
		t.Fatalf("nil clock Today() = %d, want the current puzzle", got)
	}
}

func TestDateKey(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	if got := DateKey(time.Date(2022, 1, 1, 22, 0, 0, 0, est)); got != "2022-01-02" {
		t.Fatalf("DateKey = %q, want 2022-01-02", got)
	}
}
