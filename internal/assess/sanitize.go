package assess

import (
	"regexp"
	"strings"
)

var (
	reFencedBlock = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")
	reArray       = regexp.MustCompile(`(?s)(\[.*\])`)
)

// CleanJSON extracts a JSON payload from free-form model text. It tries a
// fenced code block first, then the first bracket-delimited array substring,
// and finally returns the input unchanged. Idempotent on clean JSON.
func CleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if m := reFencedBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reArray.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}
