package game

// Level is a selectable skill level: the attempt the fake game wins on.
type Level struct {
	Attempts int    `json:"attempts"`
	Label    string `json:"label"`
}

// DefaultAttempts is the level selected when none is given.
const DefaultAttempts = 3

var levels = []Level{
	{Attempts: 2, Label: "I'm really lucky"},
	{Attempts: 3, Label: "I'm good at Wordle"},
	{Attempts: 4, Label: "I know how to play Wordle"},
	{Attempts: 5, Label: "I screwed up on the Wordle"},
	{Attempts: 6, Label: "I'm bad at Wordle"},
}

// Levels returns all skill levels ordered by attempts.
func Levels() []Level {
	return append([]Level(nil), levels...)
}

// LevelFor returns the level winning on attempts.
func LevelFor(attempts int) (Level, bool) {
	for _, l := range levels {
		if l.Attempts == attempts {
			return l, true
		}
	}
	return Level{}, false
}
