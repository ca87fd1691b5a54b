package entities

import "time"

// Answer is the graded, immutable record of a confirmed selection.
type Answer struct {
	QuestionID     int       // index of the answered question
	Question       string    // question text in the language used for grading
	Language       Language  // language active at submission
	Selection      Selection // what the user confirmed
	CorrectAnswers []string  // correct options in Language
	IsCorrect      bool      // whether Selection matched CorrectAnswers
	AnsweredAt     time.Time // timestamp when the answer was confirmed
}

// NewAnswer grades sel against q in lang and captures everything the
// results view needs, so a later language switch cannot change it.
func NewAnswer(q *Question, lang Language, sel Selection, answeredAt time.Time) Answer {
	correct := make([]string, len(q.CorrectAnswers[lang]))
	copy(correct, q.CorrectAnswers[lang])

	return Answer{
		QuestionID:     q.ID,
		Question:       q.Text[lang],
		Language:       lang,
		Selection:      sel,
		CorrectAnswers: correct,
		IsCorrect:      sel.IsCorrect(correct),
		AnsweredAt:     answeredAt,
	}
}

// Clone returns a copy that shares no slices with a.
func (a Answer) Clone() Answer {
	out := a
	out.CorrectAnswers = make([]string, len(a.CorrectAnswers))
	copy(out.CorrectAnswers, a.CorrectAnswers)
	return out
}
