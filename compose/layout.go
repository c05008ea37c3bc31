package compose

import (
	"strings"
	"unicode/utf8"
)

// wrapText greedily packs words into lines of at most limit characters,
// breaking before the word that would overflow. A single word longer than the
// limit gets its own line; words are never split.
func wrapText(text string, limit int) []string {
	words := strings.Fields(text)
	var lines []string
	var current []string
	for _, w := range words {
		current = append(current, w)
		if utf8.RuneCountInString(strings.Join(current, " ")) > limit {
			if len(current) > 1 {
				lines = append(lines, strings.Join(current[:len(current)-1], " "))
				current = []string{w}
			} else {
				lines = append(lines, w)
				current = nil
			}
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// escapeDrawtext escapes the characters the drawtext filter treats specially
// inside a filtergraph value.
func escapeDrawtext(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `:`, `\:`)
	s = strings.ReplaceAll(s, `,`, `\,`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return s
}
