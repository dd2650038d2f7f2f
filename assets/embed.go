package assets

import (
	_ "embed"
	"strings"
)

//go:embed explanation.txt
var explanation string

// Explanation returns the landing-page text, trimmed.
func Explanation() string {
	return strings.TrimSpace(explanation)
}
