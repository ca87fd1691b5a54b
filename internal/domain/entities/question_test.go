package entities

import (
	"errors"
	"testing"
)

func validQuestion() Question {
	return Question{
		ID: 0,
		Text: map[Language]string{
			LanguageUkrainian: "Оберіть прості числа",
			LanguageEnglish:   "Pick the prime numbers",
		},
		Options: map[Language][]string{
			LanguageUkrainian: {"два", "три", "чотири"},
			LanguageEnglish:   {"two", "three", "four"},
		},
		CorrectAnswers: map[Language][]string{
			LanguageUkrainian: {"два", "три"},
			LanguageEnglish:   {"two", "three"},
		},
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		ok     bool
	}{
		{name: "valid", mutate: func(*Question) {}, ok: true},
		{name: "missing text", mutate: func(q *Question) { delete(q.Text, LanguageEnglish) }},
		{name: "missing options", mutate: func(q *Question) { q.Options[LanguageUkrainian] = nil }},
		{name: "duplicate option", mutate: func(q *Question) { q.Options[LanguageEnglish] = []string{"two", "two", "four"} }},
		{name: "correct not an option", mutate: func(q *Question) { q.CorrectAnswers[LanguageEnglish] = []string{"two", "five"} }},
		{name: "missing correct", mutate: func(q *Question) { q.CorrectAnswers[LanguageEnglish] = nil }},
		{name: "option count mismatch", mutate: func(q *Question) { q.Options[LanguageEnglish] = []string{"two", "three"} }},
		{name: "correct count mismatch", mutate: func(q *Question) { q.CorrectAnswers[LanguageEnglish] = []string{"two"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid question, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidQuestion) {
				t.Fatalf("expected ErrInvalidQuestion, got %v", err)
			}
		})
	}
}

func TestQuestionLocalize(t *testing.T) {
	q := validQuestion()

	lq, err := q.Localize(LanguageEnglish)
	if err != nil {
		t.Fatalf("Localize: %v", err)
	}
	if lq.Text != "Pick the prime numbers" || !lq.Multiple || len(lq.Options) != 3 {
		t.Fatalf("unexpected localized question: %+v", lq)
	}

	lq.Options[0] = "mutated"
	if q.Options[LanguageEnglish][0] != "two" {
		t.Fatalf("Localize must copy options")
	}

	if _, err := q.Localize(""); !errors.Is(err, ErrMissingLanguage) {
		t.Fatalf("expected ErrMissingLanguage, got %v", err)
	}
}

func TestParseLanguage(t *testing.T) {
	if l, err := ParseLanguage(" EN "); err != nil || l != LanguageEnglish {
		t.Fatalf("ParseLanguage(EN) = %q, %v", l, err)
	}
	if _, err := ParseLanguage("de"); !errors.Is(err, ErrMissingLanguage) {
		t.Fatalf("expected ErrMissingLanguage, got %v", err)
	}
	if LanguageUkrainian.Toggle() != LanguageEnglish || LanguageEnglish.Toggle() != LanguageUkrainian {
		t.Fatalf("Toggle must flip between uk and en")
	}
}
