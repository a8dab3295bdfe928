package interview

import "strings"

// Answers shorter than this (after normalization) are checked against the
// non-answer phrase set.
const dontKnowMaxLength = 30

// Phrases that mean the candidate has nothing more to give on this topic.
// Probing further would only burn goodwill, so follow-ups are suppressed.
var dontKnowPhrases = map[string]bool{
	"i dont know":     true,
	"dont know":       true,
	"i do not know":   true,
	"idk":             true,
	"not sure":        true,
	"im not sure":     true,
	"no idea":         true,
	"no clue":         true,
	"skip":            true,
	"pass":            true,
	"i forgot":        true,
	"forgot":          true,
	"cant remember":   true,
	"i cant remember": true,
	"i dont remember": true,
	"next question":   true,
	"i give up":       true,
}

// normalizeAnswer lowercases and strips everything but letters and spaces,
// collapsing runs of whitespace, so "I don't know!!" and "i dont know"
// compare equal.
func normalizeAnswer(answer string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(answer) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '\n':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// isDontKnow reports whether an answer is a short non-answer.
func isDontKnow(answer string) bool {
	normalized := normalizeAnswer(answer)
	if normalized == "" {
		return true
	}
	if len(normalized) >= dontKnowMaxLength {
		return false
	}
	return dontKnowPhrases[normalized]
}
