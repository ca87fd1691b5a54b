package storage

import (
	"testing"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

func testSession(t *testing.T) *service.Session {
	t.Helper()
	s, err := service.NewSession([]entities.Question{{
		Text:           map[entities.Language]string{entities.LanguageUkrainian: "Так?", entities.LanguageEnglish: "Yes?"},
		Options:        map[entities.Language][]string{entities.LanguageUkrainian: {"так"}, entities.LanguageEnglish: {"yes"}},
		CorrectAnswers: map[entities.Language][]string{entities.LanguageUkrainian: {"так"}, entities.LanguageEnglish: {"yes"}},
	}}, entities.LanguageEnglish)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionStorage(t *testing.T) {
	st := NewSessionStorage()

	if _, ok := st.Get(1); ok {
		t.Fatalf("expected empty storage")
	}

	first := testSession(t)
	st.Store(1, first)
	st.Store(2, testSession(t))

	got, ok := st.Get(1)
	if !ok || got != first {
		t.Fatalf("Get(1) returned wrong session")
	}
	if st.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", st.Len())
	}

	replacement := testSession(t)
	st.Store(1, replacement)
	if got, _ := st.Get(1); got != replacement {
		t.Fatalf("Store must replace the previous session")
	}

	st.Delete(1)
	if _, ok := st.Get(1); ok {
		t.Fatalf("expected session to be deleted")
	}
}
