package telegram

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

func englishStrings(t *testing.T) i18n.Strings {
	t.Helper()

	dict, err := i18n.Default()
	if err != nil {
		t.Fatalf("i18n.Default() error = %v", err)
	}
	return dict.MustLookup(entities.LanguageEnglish)
}

func TestFormatQuestion(t *testing.T) {
	tr := englishStrings(t)
	bank := testBank()

	multi, err := bank[1].Localize(entities.LanguageEnglish)
	if err != nil {
		t.Fatal(err)
	}
	draft := service.NewSelectionDraft(multi)
	draft.Choose(0)

	text := formatQuestion(tr, multi, 1, 2, draft, nil)
	for _, want := range []string{"Question 2 of 2", md("(Several answers)"), "Choose answers: 1/2"} {
		if !strings.Contains(text, want) {
			t.Errorf("open question text %q does not contain %q", text, want)
		}
	}

	answer := entities.NewAnswer(&bank[1], entities.LanguageEnglish, entities.Multiple("X", "Z"), time.Now())
	text = formatQuestion(tr, multi, 1, 2, draft, &answer)
	if !strings.Contains(text, md("❌ Incorrect")) {
		t.Errorf("answered text %q has no verdict", text)
	}
	if !strings.Contains(text, bold("X, Y")) {
		t.Errorf("answered text %q does not show correct answers", text)
	}
	if strings.Contains(text, "Choose answers") {
		t.Errorf("answered text %q still asks for a selection", text)
	}
}

func TestFormatQuizResult(t *testing.T) {
	tr := englishStrings(t)

	res := &service.Results{
		Score:   50,
		Correct: 1,
		Total:   2,
		Grade:   service.GradePoor,
		Review: []service.ReviewEntry{
			{Index: 0, Question: "Question 1", Selected: []string{"A"}, Correct: []string{"A"}, IsCorrect: true},
			{Index: 1, Question: "Question 2", Selected: []string{"X", "Z"}, Correct: []string{"X", "Y"}},
		},
	}

	chunks := formatQuizResult(tr, res)
	if len(chunks) != 1 {
		t.Fatalf("short review should fit one message, got %d", len(chunks))
	}
	text := chunks[0]
	for _, want := range []string{
		"Test results",
		bold("50%"),
		"Correct answers: 1 out of 2",
		md(tr.ResultMessages.Poor),
		md("❌ 2. Question 2"),
		"Your answer: X, Z",
		"Correct answer: X, Y",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("result text does not contain %q:\n%s", want, text)
		}
	}
	if strings.Count(text, "Correct answer:") != 1 {
		t.Errorf("correct answer should be shown only for wrong answers:\n%s", text)
	}
}

func TestFormatQuizResultSplitsLongReview(t *testing.T) {
	tr := englishStrings(t)

	res := &service.Results{Score: 50, Total: 40, Grade: service.GradePoor}
	for i := 0; i < 40; i++ {
		res.Review = append(res.Review, service.ReviewEntry{
			Index:     i,
			Question:  fmt.Sprintf("What does the built-in function number %d (len, cap, make...) return?", i+1),
			Selected:  []string{"an int (probably)"},
			Correct:   []string{"an int"},
			IsCorrect: i%2 == 0,
		})
	}

	chunks := formatQuizResult(tr, res)
	if len(chunks) < 2 {
		t.Fatalf("expected the review to be split, got %d message(s)", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > maxMessageLength {
			t.Errorf("chunk %d is %d bytes, limit %d", i, len(c), maxMessageLength)
		}
	}

	all := strings.Join(chunks, "\n\n")
	for i := 1; i <= 40; i++ {
		if strings.Count(all, md(fmt.Sprintf(" %d. What does the built-in function number %d ", i, i))) != 1 {
			t.Errorf("entry %d missing or duplicated", i)
		}
	}
	if !strings.HasPrefix(chunks[0], bold("🏁 Test results")) {
		t.Errorf("first chunk should open with the summary: %q", chunks[0][:40])
	}
}

func TestTruncateMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"plain cut", "abcdef", 4, "abcd"},
		{"dangling escape", `ab\.cd`, 3, "ab"},
		{"escaped backslash kept", `a\\b`, 3, `a\\`},
		{"rune boundary", "абв", 3, "а"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateMarkdown(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncateMarkdown(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}
