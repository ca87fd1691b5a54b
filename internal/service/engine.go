package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

var (
	ErrEmptyBank             = errors.New("question bank is empty")
	ErrQuestionOutOfRange    = errors.New("question index out of range")
	ErrInvalidSelectionCount = errors.New("selection does not match required answer count")
	ErrNotFinished           = errors.New("quiz is not finished")
)

// QuizEngine owns the state of one quiz run: one answer slot per question
// and the finished flag. It is not safe for concurrent use; every call is
// expected to come from a single UI event loop.
type QuizEngine struct {
	questions []entities.Question
	answers   []*entities.Answer
	finished  bool
	now       func() time.Time
}

// NewQuizEngine creates an engine over a validated, read-only question bank.
func NewQuizEngine(questions []entities.Question) (*QuizEngine, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	return &QuizEngine{
		questions: questions,
		answers:   make([]*entities.Answer, len(questions)),
		now:       time.Now,
	}, nil
}

// Submit grades sel for the question at index using the correct answers of
// lang and records the result. It reports false without error when the
// question was already answered.
func (e *QuizEngine) Submit(lang entities.Language, index int, sel entities.Selection) (bool, error) {
	if !lang.Valid() {
		return false, entities.ErrMissingLanguage
	}
	if index < 0 || index >= len(e.questions) {
		return false, fmt.Errorf("%w: %d", ErrQuestionOutOfRange, index)
	}
	if e.answers[index] != nil {
		return false, nil
	}

	q := &e.questions[index]
	if err := checkSelection(q, lang, sel); err != nil {
		return false, err
	}

	answer := entities.NewAnswer(q, lang, sel, e.now())
	e.answers[index] = &answer

	return true, nil
}

func checkSelection(q *entities.Question, lang entities.Language, sel entities.Selection) error {
	required := q.RequiredCount(lang)

	if q.IsMultipleChoice(lang) {
		if !sel.IsMultiple() || sel.Len() != required {
			return fmt.Errorf("%w: question %d needs %d, got %d", ErrInvalidSelectionCount, q.ID, required, sel.Len())
		}
		return nil
	}

	if sel.Kind() != entities.SelectionSingle || sel.Value() == "" {
		return fmt.Errorf("%w: question %d needs a single option", ErrInvalidSelectionCount, q.ID)
	}

	return nil
}

// Total returns the number of questions.
func (e *QuizEngine) Total() int {
	return len(e.questions)
}

// Question returns the question at index.
func (e *QuizEngine) Question(index int) (*entities.Question, error) {
	if index < 0 || index >= len(e.questions) {
		return nil, fmt.Errorf("%w: %d", ErrQuestionOutOfRange, index)
	}
	return &e.questions[index], nil
}

// Answered reports whether the slot at index holds an answer.
func (e *QuizEngine) Answered(index int) bool {
	return index >= 0 && index < len(e.answers) && e.answers[index] != nil
}

// Answer returns a copy of the recorded answer at index.
func (e *QuizEngine) Answer(index int) (entities.Answer, bool) {
	if !e.Answered(index) {
		return entities.Answer{}, false
	}
	return e.answers[index].Clone(), true
}

// Answers returns a copy of every slot; unanswered slots are nil.
func (e *QuizEngine) Answers() []*entities.Answer {
	out := make([]*entities.Answer, len(e.answers))
	for i, a := range e.answers {
		if a == nil {
			continue
		}
		c := a.Clone()
		out[i] = &c
	}
	return out
}

// AnsweredCount returns the number of filled slots.
func (e *QuizEngine) AnsweredCount() int {
	n := 0
	for _, a := range e.answers {
		if a != nil {
			n++
		}
	}
	return n
}

// CorrectCount returns the number of correct answers recorded so far.
func (e *QuizEngine) CorrectCount() int {
	n := 0
	for _, a := range e.answers {
		if a != nil && a.IsCorrect {
			n++
		}
	}
	return n
}

// Progress returns the answered share of the quiz in percent.
func (e *QuizEngine) Progress() float64 {
	return float64(e.AnsweredCount()) / float64(len(e.questions)) * 100
}

// CanFinish reports whether every question has been answered.
func (e *QuizEngine) CanFinish() bool {
	return e.AnsweredCount() == len(e.questions)
}

// Finish marks the quiz finished when all questions are answered and
// reports whether the quiz is finished afterwards.
func (e *QuizEngine) Finish() bool {
	if e.CanFinish() {
		e.finished = true
	}
	return e.finished
}

// Finished reports whether Finish succeeded.
func (e *QuizEngine) Finished() bool {
	return e.finished
}

// Score returns the share of correct answers in percent.
func (e *QuizEngine) Score() (float64, error) {
	if !e.finished {
		return 0, ErrNotFinished
	}
	return float64(e.CorrectCount()) / float64(len(e.questions)) * 100, nil
}

// Restart discards every answer and clears the finished flag.
func (e *QuizEngine) Restart() {
	e.answers = make([]*entities.Answer, len(e.questions))
	e.finished = false
}
