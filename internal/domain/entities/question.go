package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidQuestion is returned when a question breaks the bank invariants.
var ErrInvalidQuestion = errors.New("invalid question")

// Question is one bilingual multiple-choice question from the question bank.
type Question struct {
	ID             int                   `yaml:"-"`               // position of the question in the bank
	Text           map[Language]string   `yaml:"text"`            // question text per language
	Options        map[Language][]string `yaml:"options"`         // ordered answer options per language
	CorrectAnswers map[Language][]string `yaml:"correct_answers"` // correct options per language
}

// LocalizedQuestion is a read-only view of a question in one language.
type LocalizedQuestion struct {
	ID             int
	Language       Language
	Text           string
	Options        []string
	CorrectAnswers []string
	Multiple       bool // more than one correct option
}

// IsMultipleChoice reports whether the question needs more than one option
// in the given language.
func (q *Question) IsMultipleChoice(lang Language) bool {
	return len(q.CorrectAnswers[lang]) > 1
}

// RequiredCount returns how many options must be selected in lang.
func (q *Question) RequiredCount(lang Language) int {
	return len(q.CorrectAnswers[lang])
}

// Localize returns the question as seen in lang.
func (q *Question) Localize(lang Language) (LocalizedQuestion, error) {
	if !lang.Valid() {
		return LocalizedQuestion{}, ErrMissingLanguage
	}

	options := make([]string, len(q.Options[lang]))
	copy(options, q.Options[lang])
	correct := make([]string, len(q.CorrectAnswers[lang]))
	copy(correct, q.CorrectAnswers[lang])

	return LocalizedQuestion{
		ID:             q.ID,
		Language:       lang,
		Text:           q.Text[lang],
		Options:        options,
		CorrectAnswers: correct,
		Multiple:       len(correct) > 1,
	}, nil
}

// Validate checks that the question is complete in every language and that
// all languages describe the same question shape.
func (q *Question) Validate() error {
	optionCount, correctCount := -1, -1

	for _, lang := range Languages {
		if q.Text[lang] == "" {
			return fmt.Errorf("%w: question %d: missing %s text", ErrInvalidQuestion, q.ID, lang)
		}

		options := q.Options[lang]
		if len(options) == 0 {
			return fmt.Errorf("%w: question %d: missing %s options", ErrInvalidQuestion, q.ID, lang)
		}
		if dup, ok := firstDuplicate(options); ok {
			return fmt.Errorf("%w: question %d: duplicate %s option %q", ErrInvalidQuestion, q.ID, lang, dup)
		}

		correct := q.CorrectAnswers[lang]
		if len(correct) == 0 {
			return fmt.Errorf("%w: question %d: missing %s correct answers", ErrInvalidQuestion, q.ID, lang)
		}
		if dup, ok := firstDuplicate(correct); ok {
			return fmt.Errorf("%w: question %d: duplicate %s correct answer %q", ErrInvalidQuestion, q.ID, lang, dup)
		}
		for _, c := range correct {
			if !containsString(options, c) {
				return fmt.Errorf("%w: question %d: %s correct answer %q is not an option", ErrInvalidQuestion, q.ID, lang, c)
			}
		}

		if optionCount == -1 {
			optionCount, correctCount = len(options), len(correct)
			continue
		}
		if len(options) != optionCount || len(correct) != correctCount {
			return fmt.Errorf("%w: question %d: %s options do not match other languages", ErrInvalidQuestion, q.ID, lang)
		}
	}

	return nil
}

func firstDuplicate(values []string) (string, bool) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
