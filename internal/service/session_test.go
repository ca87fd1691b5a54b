package service

import (
	"errors"
	"testing"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

func TestNewSessionRequiresLanguage(t *testing.T) {
	if _, err := NewSession(exampleBank(), ""); !errors.Is(err, entities.ErrMissingLanguage) {
		t.Fatalf("expected ErrMissingLanguage, got %v", err)
	}
	if _, err := NewSession(nil, entities.LanguageEnglish); !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
}

func TestSessionConfirmFlow(t *testing.T) {
	s, err := NewSession(exampleBank(), entities.LanguageUkrainian)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if err := s.Choose(0, 0); err != nil {
		t.Fatalf("Choose: %v", err)
	}
	recorded, err := s.Confirm(0)
	if err != nil || !recorded {
		t.Fatalf("Confirm(0) = %v, %v", recorded, err)
	}

	next, ok := s.NextUnanswered(0)
	if !ok || next != 1 {
		t.Fatalf("NextUnanswered = %d, %v", next, ok)
	}

	_ = s.Choose(1, 0)
	if _, err := s.Confirm(1); !errors.Is(err, ErrInvalidSelectionCount) {
		t.Fatalf("expected ErrInvalidSelectionCount, got %v", err)
	}

	if s.ToggleLanguage() != entities.LanguageEnglish {
		t.Fatalf("expected English after toggle")
	}
	_ = s.Choose(1, 1)
	if _, err := s.Confirm(1); err != nil {
		t.Fatalf("Confirm(1): %v", err)
	}

	if _, ok := s.NextUnanswered(0); ok {
		t.Fatalf("expected no unanswered question")
	}

	if !s.Finish() {
		t.Fatalf("expected finish to succeed")
	}
	res, err := s.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if res.Review[0].Language != entities.LanguageUkrainian || res.Review[1].Language != entities.LanguageEnglish {
		t.Fatalf("review must keep grading languages: %+v", res.Review)
	}
	if !almostEqual(res.Score, 100) {
		t.Fatalf("expected score 100, got %v", res.Score)
	}
}

func TestSessionChooseAfterAnswerIsIgnored(t *testing.T) {
	s, _ := NewSession(exampleBank(), entities.LanguageEnglish)
	_ = s.Choose(0, 1)
	_, _ = s.Confirm(0)

	_ = s.Choose(0, 0)
	d, _ := s.Draft(0)
	if !d.IsChosen(1) || d.IsChosen(0) {
		t.Fatalf("answered question draft must stay frozen")
	}

	recorded, err := s.Confirm(0)
	if recorded || err != nil {
		t.Fatalf("Confirm on answered question = %v, %v", recorded, err)
	}
}

func TestSessionRestartKeepsLanguage(t *testing.T) {
	s, _ := NewSession(exampleBank(), entities.LanguageEnglish)
	_ = s.Choose(0, 0)
	_, _ = s.Confirm(0)
	s.ToggleLanguage()

	s.Restart()

	if s.Language() != entities.LanguageUkrainian {
		t.Fatalf("restart must keep the active language")
	}
	if s.Progress() != 0 || s.Finished() {
		t.Fatalf("restart must reset state")
	}
	d, _ := s.Draft(0)
	if len(d.Chosen()) != 0 {
		t.Fatalf("restart must drop drafts")
	}
}

func TestSessionNextUnansweredWraps(t *testing.T) {
	s, _ := NewSession(exampleBank(), entities.LanguageEnglish)
	_ = s.Choose(1, 0)
	_ = s.Choose(1, 1)
	_, _ = s.Confirm(1)

	if next, ok := s.NextUnanswered(1); !ok || next != 0 {
		t.Fatalf("NextUnanswered(1) = %d, %v", next, ok)
	}
}
