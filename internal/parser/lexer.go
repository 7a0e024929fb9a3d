package parser

import "strings"

// SourceLine is a surviving line of source paired with its original
// 1-based editor line number.
type SourceLine struct {
	Text       string
	EditorLine int
}

// NormaliseLines strips comments (leading ') and blank lines, retaining
// the original 1-based editor line number for every surviving line.
func NormaliseLines(source string) []SourceLine {
	rawLines := strings.Split(source, "\n")
	lines := make([]SourceLine, 0, len(rawLines))

	for i, raw := range rawLines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "'") {
			continue
		}
		lines = append(lines, SourceLine{
			Text:       trimmed,
			EditorLine: i + 1,
		})
	}

	return lines
}
