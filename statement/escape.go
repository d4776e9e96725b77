package statement

import (
	"strings"
	"unicode"
)

const escapeChar = '\\'

// specialChars are the characters the lexer splits or quotes on when they appear outside of quotes.
const specialChars = `\'",();`

// escapeName prefixes every character that would end or split an unquoted name with a backslash, so the lexer
// reads the name back as one word.
func escapeName(name string) string {
	var builder strings.Builder
	for _, char := range name {
		if unicode.IsSpace(char) || strings.ContainsRune(specialChars, char) {
			builder.WriteRune(escapeChar)
		}
		builder.WriteRune(char)
	}
	return builder.String()
}

// escapeQuoted escapes the backslash and the closing delimiter within quoted text.
func escapeQuoted(text string, quote rune) string {
	var builder strings.Builder
	for _, char := range text {
		if char == escapeChar || char == quote {
			builder.WriteRune(escapeChar)
		}
		builder.WriteRune(char)
	}
	return builder.String()
}
