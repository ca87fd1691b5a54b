// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingLanguage is returned when a language-dependent value is read
// without an established language context.
var ErrMissingLanguage = errors.New("missing language context")

// Language is a two-value tag selecting question text, options and UI strings.
// The zero value is not a language.
type Language string

const (
	LanguageUkrainian Language = "uk"
	LanguageEnglish   Language = "en"
)

// Languages lists every supported language in display order.
var Languages = []Language{LanguageUkrainian, LanguageEnglish}

// ParseLanguage converts a tag such as "uk" or "EN" into a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: unknown language %q", ErrMissingLanguage, s)
	}
	return l, nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LanguageUkrainian || l == LanguageEnglish
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == LanguageUkrainian {
		return LanguageEnglish
	}
	return LanguageUkrainian
}

func (l Language) String() string {
	return string(l)
}
