package utils

import "strings"

func NormalizeDifficulty(difficulty string) string {
	return strings.ToLower(strings.TrimSpace(difficulty))
}

func NormalizeRole(role string) string {
	return strings.TrimSpace(role)
}

// StripFences removes a surrounding markdown code fence, if present, and
// trims whitespace. LLM output frequently wraps JSON in ```json fences.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return strings.Trim(s, "` \t")
	}

	// drop the opening ```lang line
	lines = lines[1:]
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExtractJSONObject returns the first top-level {...} block in s, handling
// responses where the model wraps JSON in prose or fences.
func ExtractJSONObject(s string) string {
	s = StripFences(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
