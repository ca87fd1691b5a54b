package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

// Session binds one QuizEngine to an explicit language context and keeps
// the unconfirmed selection drafts of the presentation layer.
type Session struct {
	ID     uuid.UUID
	engine *QuizEngine
	lang   entities.Language
	drafts map[int]*SelectionDraft
}

// NewSession starts a quiz over questions in lang. The language must be
// established up front; there is no default.
func NewSession(questions []entities.Question, lang entities.Language) (*Session, error) {
	if !lang.Valid() {
		return nil, entities.ErrMissingLanguage
	}

	engine, err := NewQuizEngine(questions)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:     uuid.New(),
		engine: engine,
		lang:   lang,
		drafts: make(map[int]*SelectionDraft),
	}, nil
}

// Language returns the active language.
func (s *Session) Language() entities.Language {
	return s.lang
}

// ToggleLanguage switches between the two languages and returns the new one.
// Recorded answers keep the language they were graded in.
func (s *Session) ToggleLanguage() entities.Language {
	s.lang = s.lang.Toggle()
	return s.lang
}

// Engine exposes the underlying quiz state.
func (s *Session) Engine() *QuizEngine {
	return s.engine
}

// Total returns the number of questions.
func (s *Session) Total() int {
	return s.engine.Total()
}

// Question returns the question at index in the active language.
func (s *Session) Question(index int) (entities.LocalizedQuestion, error) {
	q, err := s.engine.Question(index)
	if err != nil {
		return entities.LocalizedQuestion{}, err
	}
	return q.Localize(s.lang)
}

// Draft returns the selection draft for the question at index.
func (s *Session) Draft(index int) (*SelectionDraft, error) {
	if d, ok := s.drafts[index]; ok {
		return d, nil
	}

	q, err := s.Question(index)
	if err != nil {
		return nil, err
	}

	d := NewSelectionDraft(q)
	s.drafts[index] = d
	return d, nil
}

// Choose picks an option in the draft of an unanswered question.
func (s *Session) Choose(index, option int) error {
	if s.engine.Answered(index) {
		return nil
	}

	d, err := s.Draft(index)
	if err != nil {
		return err
	}
	d.Choose(option)
	return nil
}

// Confirm submits the draft of the question at index. It reports false
// without error when the question was already answered.
func (s *Session) Confirm(index int) (bool, error) {
	if s.engine.Answered(index) {
		return false, nil
	}

	d, err := s.Draft(index)
	if err != nil {
		return false, err
	}

	q, err := s.Question(index)
	if err != nil {
		return false, err
	}

	sel, err := d.Selection(q)
	if err != nil {
		return false, fmt.Errorf("confirm question %d: %w", index, err)
	}

	return s.Submit(index, sel)
}

// Submit grades sel for the question at index in the active language.
func (s *Session) Submit(index int, sel entities.Selection) (bool, error) {
	return s.engine.Submit(s.lang, index, sel)
}

// NextUnanswered returns the first unanswered question at or after from,
// wrapping around. It reports false when every question is answered.
func (s *Session) NextUnanswered(from int) (int, bool) {
	total := s.engine.Total()
	for i := 0; i < total; i++ {
		idx := ((from+i)%total + total) % total
		if !s.engine.Answered(idx) {
			return idx, true
		}
	}
	return 0, false
}

// Progress returns the answered share of the quiz in percent.
func (s *Session) Progress() float64 {
	return s.engine.Progress()
}

// CanFinish reports whether every question has been answered.
func (s *Session) CanFinish() bool {
	return s.engine.CanFinish()
}

// Finish marks the quiz finished when possible.
func (s *Session) Finish() bool {
	return s.engine.Finish()
}

// Finished reports whether the quiz is finished.
func (s *Session) Finished() bool {
	return s.engine.Finished()
}

// Results returns the results summary of a finished quiz.
func (s *Session) Results() (*Results, error) {
	return s.engine.Results()
}

// Restart clears answers and drafts. The language stays as it is.
func (s *Session) Restart() {
	s.engine.Restart()
	s.drafts = make(map[int]*SelectionDraft)
}
