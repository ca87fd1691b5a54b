package service

import "github.com/aliskhannn/bilingual-quiz/internal/domain/entities"

// Grade is the result band shown with the final score.
type Grade string

const (
	GradePerfect Grade = "perfect"
	GradeGood    Grade = "good"
	GradeAverage Grade = "average"
	GradePoor    Grade = "poor"
)

// GradeFor maps a score in percent to its result band.
func GradeFor(score float64) Grade {
	switch {
	case score >= 100:
		return GradePerfect
	case score >= 80:
		return GradeGood
	case score >= 60:
		return GradeAverage
	default:
		return GradePoor
	}
}

// ReviewEntry describes one answer in the detailed review.
type ReviewEntry struct {
	Index     int
	Question  string
	Language  entities.Language
	Selected  []string
	Correct   []string
	IsCorrect bool
}

// Results is the summary of a finished quiz.
type Results struct {
	Score   float64
	Correct int
	Total   int
	Grade   Grade
	Review  []ReviewEntry
}

// Results builds the summary of a finished quiz.
func (e *QuizEngine) Results() (*Results, error) {
	score, err := e.Score()
	if err != nil {
		return nil, err
	}

	review := make([]ReviewEntry, 0, len(e.answers))
	for i, a := range e.answers {
		if a == nil {
			continue
		}
		answer := a.Clone()
		review = append(review, ReviewEntry{
			Index:     i,
			Question:  answer.Question,
			Language:  answer.Language,
			Selected:  answer.Selection.Values(),
			Correct:   answer.CorrectAnswers,
			IsCorrect: answer.IsCorrect,
		})
	}

	return &Results{
		Score:   score,
		Correct: e.CorrectCount(),
		Total:   len(e.questions),
		Grade:   GradeFor(score),
		Review:  review,
	}, nil
}
