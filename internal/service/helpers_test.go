package service

import (
	"math"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

// exampleBank returns two questions: a single-select one with correct
// answer "A" and a multi-select one with correct answers "X" and "Y".
// Ukrainian texts are lower-case variants so graded language is visible.
func exampleBank() []entities.Question {
	return []entities.Question{
		{
			ID: 0,
			Text: map[entities.Language]string{
				entities.LanguageUkrainian: "Питання 1",
				entities.LanguageEnglish:   "Question 1",
			},
			Options: map[entities.Language][]string{
				entities.LanguageUkrainian: {"а", "б", "в"},
				entities.LanguageEnglish:   {"A", "B", "C"},
			},
			CorrectAnswers: map[entities.Language][]string{
				entities.LanguageUkrainian: {"а"},
				entities.LanguageEnglish:   {"A"},
			},
		},
		{
			ID: 1,
			Text: map[entities.Language]string{
				entities.LanguageUkrainian: "Питання 2",
				entities.LanguageEnglish:   "Question 2",
			},
			Options: map[entities.Language][]string{
				entities.LanguageUkrainian: {"х", "у", "з"},
				entities.LanguageEnglish:   {"X", "Y", "Z"},
			},
			CorrectAnswers: map[entities.Language][]string{
				entities.LanguageUkrainian: {"х", "у"},
				entities.LanguageEnglish:   {"X", "Y"},
			},
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
