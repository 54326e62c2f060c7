package services

import (
	"regexp"
	"strconv"
	"strings"
)

// NoResponseExplanation is shown when no response text was received at all.
const NoResponseExplanation = "Error receiving response."

// The score line must open the response: digits only, no sign. This mirrors
// the output format instructed by BuildMatchScorePrompt.
var atsScorePattern = regexp.MustCompile(`^Score:\s*(\d+)`)

// ParseATSScoreOutcome interprets a gateway outcome for the match analysis.
// received=false means no response text arrived at all, which yields score 0
// and the fixed error explanation.
func ParseATSScoreOutcome(text string, received bool) (score int, explanation string, ok bool) {
	if !received {
		return 0, NoResponseExplanation, false
	}
	return ParseATSScore(text)
}

// ParseATSScore extracts the leading "Score: N" convention from a model
// response. On a match the score is clamped to [0,100] and the explanation
// is the remainder of the text; otherwise the score is 0, the explanation is
// the full unparsed text, and ok is false so the caller can warn.
func ParseATSScore(text string) (score int, explanation string, ok bool) {
	match := atsScorePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, text, false
	}

	parsed, err := strconv.Atoi(match[1])
	if err != nil || parsed > 100 {
		// Any matched digit run is a score; runs too long to fit an int
		// clamp the same way 137 does.
		parsed = 100
	}

	return parsed, strings.TrimSpace(text[len(match[0]):]), true
}
