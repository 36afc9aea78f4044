package trivia

import "strings"

// ExtractArray locates the first top-level array-like span in free text:
// everything from the first '[' through the last ']'. Models regularly
// wrap their JSON in explanatory prose, so this best-effort structural
// extraction runs before any parse attempt.
func ExtractArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
