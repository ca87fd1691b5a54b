package repository

import (
	"errors"
	"slices"
	"testing"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

func TestAssembleQuestions(t *testing.T) {
	ids := []int64{20, 10}
	texts := []textRow{
		{QuestionID: 10, Lang: "uk", Text: "Друге"},
		{QuestionID: 10, Lang: "en", Text: "Second"},
		{QuestionID: 20, Lang: "uk", Text: "Перше"},
		{QuestionID: 20, Lang: "en", Text: "First"},
		{QuestionID: 99, Lang: "en", Text: "Orphan"},
	}
	options := []optionRow{
		{QuestionID: 10, Lang: "en", Value: "x", IsCorrect: true},
		{QuestionID: 10, Lang: "en", Value: "y", IsCorrect: true},
		{QuestionID: 10, Lang: "en", Value: "z"},
		{QuestionID: 10, Lang: "uk", Value: "х", IsCorrect: true},
		{QuestionID: 10, Lang: "uk", Value: "у", IsCorrect: true},
		{QuestionID: 10, Lang: "uk", Value: "з"},
		{QuestionID: 20, Lang: "en", Value: "a", IsCorrect: true},
		{QuestionID: 20, Lang: "en", Value: "b"},
		{QuestionID: 20, Lang: "uk", Value: "а", IsCorrect: true},
		{QuestionID: 20, Lang: "uk", Value: "б"},
	}

	questions, err := assembleQuestions(ids, texts, options)
	if err != nil {
		t.Fatalf("assembleQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	first := questions[0]
	if first.ID != 0 || first.Text[entities.LanguageEnglish] != "First" || first.IsMultipleChoice(entities.LanguageEnglish) {
		t.Fatalf("unexpected first question: %+v", first)
	}

	second := questions[1]
	if !slices.Equal(second.Options[entities.LanguageEnglish], []string{"x", "y", "z"}) {
		t.Fatalf("options must keep position order, got %v", second.Options[entities.LanguageEnglish])
	}
	if !slices.Equal(second.CorrectAnswers[entities.LanguageUkrainian], []string{"х", "у"}) {
		t.Fatalf("unexpected correct answers: %v", second.CorrectAnswers[entities.LanguageUkrainian])
	}

	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			t.Fatalf("assembled question %d invalid: %v", i, err)
		}
	}
}

func TestAssembleQuestionsRejectsUnknownLanguage(t *testing.T) {
	_, err := assembleQuestions([]int64{1}, []textRow{{QuestionID: 1, Lang: "de", Text: "Frage"}}, nil)
	if !errors.Is(err, entities.ErrMissingLanguage) {
		t.Fatalf("expected ErrMissingLanguage, got %v", err)
	}
}
