package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{100, GradePerfect},
		{99.9, GradeGood},
		{80, GradeGood},
		{79.9, GradeAverage},
		{60, GradeAverage},
		{59, GradePoor},
		{0, GradePoor},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Fatalf("GradeFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestResultsReview(t *testing.T) {
	e := newEngine(t)

	if _, err := e.Results(); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("expected ErrNotFinished, got %v", err)
	}

	_, _ = e.Submit(en, 0, entities.Single("B"))
	_, _ = e.Submit(en, 1, entities.Multiple("Y", "X"))
	e.Finish()

	res, err := e.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if res.Correct != 1 || res.Total != 2 || !almostEqual(res.Score, 50) || res.Grade != GradePoor {
		t.Fatalf("unexpected summary: %+v", res)
	}
	if len(res.Review) != 2 {
		t.Fatalf("expected 2 review entries, got %d", len(res.Review))
	}

	first := res.Review[0]
	if first.IsCorrect || !slices.Equal(first.Selected, []string{"B"}) || !slices.Equal(first.Correct, []string{"A"}) {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	second := res.Review[1]
	if !second.IsCorrect || second.Question != "Question 2" {
		t.Fatalf("unexpected second entry: %+v", second)
	}
}
