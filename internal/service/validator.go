package service

import (
	"strings"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

// normalizeText trims s and collapses inner whitespace runs to one space.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeQuestion returns a copy of q with every text, option and correct
// answer normalized. Grading compares strings exactly, so options and
// correct answers must be spelled the same way.
func normalizeQuestion(q entities.Question) entities.Question {
	out := entities.Question{
		ID:             q.ID,
		Text:           make(map[entities.Language]string, len(q.Text)),
		Options:        make(map[entities.Language][]string, len(q.Options)),
		CorrectAnswers: make(map[entities.Language][]string, len(q.CorrectAnswers)),
	}

	for lang, text := range q.Text {
		out.Text[lang] = normalizeText(text)
	}
	for lang, options := range q.Options {
		out.Options[lang] = normalizeAll(options)
	}
	for lang, correct := range q.CorrectAnswers {
		out.CorrectAnswers[lang] = normalizeAll(correct)
	}

	return out
}

func normalizeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = normalizeText(v)
	}
	return out
}
