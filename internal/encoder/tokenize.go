package encoder

import "strings"

// tokenize splits an instruction line on whitespace and any of '(', ')',
// ','. Exactly four tokens (mnemonic + three operands) are expected of a
// well-formed instruction line.
func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', '(', ')', ',':
			return true
		default:
			return false
		}
	})
}
