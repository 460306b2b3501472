package helpers

import (
	"strings"
	"unicode"
)

// SanitizeText prepares backend-controlled text (headlines, sources) for
// insertion into termui widgets. Control characters are dropped and the
// "](" close of a termui style sequence is broken up so the text cannot
// smuggle markup into the terminal.
func SanitizeText(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ReplaceAll(b.String(), "](", "] (")
}

// EscapeMarkdownV2 escapes the characters Telegram MarkdownV2 reserves
func EscapeMarkdownV2(text string) string {
	var b strings.Builder
	for _, r := range text {
		if strings.ContainsRune("\\_*[]()~`>#+-=|{}.!", r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
