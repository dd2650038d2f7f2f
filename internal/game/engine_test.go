package game

import (
	"math/rand/v2"
	"testing"

	"github.com/robalobadob/fraudle/internal/words"
)

const (
	L = MarkLocked
	P = MarkPartial
	A = MarkAbsent
)

func mustParse(t *testing.T, s string) words.Word {
	t.Helper()
	w, err := words.Default().Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return w
}

func TestScoreExample(t *testing.T) {
	got := Score(words.Word{1, 5, 3, 2, 6}, words.Word{1, 2, 3, 4, 5})
	want := WordResult{L, P, L, P, A}
	if got != want {
		t.Fatalf("Score = %v, want %v", got, want)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   WordResult
	}{
		{name: "exact", guess: "abcde", answer: "abcde", want: WordResult{L, L, L, L, L}},
		{name: "disjoint", guess: "abcde", answer: "fghij", want: WordResult{A, A, A, A, A}},
		{name: "anagram", guess: "eabcd", answer: "abcde", want: WordResult{P, P, P, P, P}},
		{name: "extra copies beyond answer", guess: "aaaab", answer: "aabcd", want: WordResult{L, L, A, A, P}},
		{name: "locked claims before partial", guess: "aaaaa", answer: "bcdaa", want: WordResult{A, A, A, L, L}},
		{name: "partial consumed once", guess: "ccaaa", answer: "abacd", want: WordResult{P, A, L, P, A}},
		{name: "repeated answer letter", guess: "bbbaa", answer: "aabbc", want: WordResult{P, A, L, P, P}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(mustParse(t, tt.guess), mustParse(t, tt.answer))
			if got != tt.want {
				t.Fatalf("Score(%s, %s) = %v, want %v", tt.guess, tt.answer, got, tt.want)
			}
		})
	}
}

func TestScoreCounts(t *testing.T) {
	src := rand.New(rand.NewPCG(11, 12))
	alphabet, _ := words.NewAlphabet(4)
	for i := 0; i < 5000; i++ {
		g, a := alphabet.RandomWord(src), alphabet.RandomWord(src)
		res := Score(g, a)

		var matches, locked, marked int
		var gc, ac [words.MaxLetters]int
		for p := range g {
			if g[p] == a[p] {
				matches++
			}
			gc[g[p]]++
			ac[a[p]]++
			switch res[p] {
			case MarkLocked:
				locked++
				marked++
			case MarkPartial:
				marked++
			}
		}
		intersection := 0
		for l := range gc {
			intersection += min(gc[l], ac[l])
		}
		if locked != matches {
			t.Fatalf("Score(%s, %s): %d locked, %d matching positions", g, a, locked, matches)
		}
		if marked != intersection {
			t.Fatalf("Score(%s, %s): %d locked+partial, intersection %d", g, a, marked, intersection)
		}
		if Score(g, g) != (WordResult{L, L, L, L, L}) {
			t.Fatalf("Score(%s, %s) not all locked", g, g)
		}
	}
}

func TestMarkValid(t *testing.T) {
	for _, m := range []Mark{MarkLocked, MarkPartial, MarkAbsent} {
		if !m.Valid() {
			t.Errorf("%q should be valid", m)
		}
	}
	if Mark("hit").Valid() || Mark("").Valid() {
		t.Error("unknown marks should be invalid")
	}
}

func TestUnreachablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Unreachable(Mark("bogus"))
}
