package service

import (
	"context"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

// QuestionRepository provides the read-only question bank.
type QuestionRepository interface {
	GetAll(ctx context.Context) ([]entities.Question, error)
}
