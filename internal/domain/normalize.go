package domain

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// NormalizeWord strips leading and trailing whitespace. Case and inner
// spacing are left alone because the provider signs the exact query text.
func NormalizeWord(word string) string {
	return strings.TrimSpace(word)
}

// NormalizeLanguage returns the trimmed language code or DefaultLanguage when empty.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// ValidateWord checks a normalized word. Length is counted in grapheme
// clusters so CJK text and emoji are measured the way a reader sees them.
// maxLen <= 0 disables the length check.
func ValidateWord(word string, maxLen int) error {
	if word == "" {
		return NewValidationError("word", "required")
	}
	if maxLen > 0 && uniseg.GraphemeClusterCount(word) > maxLen {
		return NewValidationError("word", fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return nil
}
