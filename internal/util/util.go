package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase capitalizes the first letter of every word and lower-cases the
// rest. Underscores are kept but still separate words, so "human_practices"
// becomes "Human_Practices". The Unicode word breaker alone would treat the
// underscore as part of the word.
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	// Casers are stateful and not safe for concurrent use.
	caser := cases.Title(language.Und)
	parts := strings.Split(s, "_")
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, "_")
}

// SpacedTitle turns a page name into the form shown to readers:
// underscores become spaces and each word is capitalized.
func SpacedTitle(name string) string {
	return TitleCase(strings.ReplaceAll(name, "_", " "))
}
