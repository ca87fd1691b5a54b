package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

// QuizService loads the question bank once and starts quiz sessions over it.
type QuizService struct {
	questions []entities.Question
	language  entities.Language
	logger    *zap.Logger
}

// NewQuizService loads and validates the question bank from repo.
// lang is the language new sessions start in.
func NewQuizService(
	ctx context.Context,
	repo QuestionRepository,
	lang entities.Language,
	logger *zap.Logger,
) (*QuizService, error) {
	if !lang.Valid() {
		return nil, entities.ErrMissingLanguage
	}

	questions, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	if err := ValidateBank(questions); err != nil {
		return nil, err
	}

	logger.Info("question bank loaded",
		zap.Int("questions", len(questions)),
		zap.String("language", lang.String()),
	)

	return &QuizService{
		questions: questions,
		language:  lang,
		logger:    logger,
	}, nil
}

// ValidateBank normalizes whitespace, assigns positional IDs and checks
// every question.
func ValidateBank(questions []entities.Question) error {
	if len(questions) == 0 {
		return ErrEmptyBank
	}

	for i := range questions {
		questions[i] = normalizeQuestion(questions[i])
		questions[i].ID = i
		if err := questions[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Questions returns the number of questions in the bank.
func (s *QuizService) Questions() int {
	return len(s.questions)
}

// NewSession starts a fresh quiz in the configured language.
func (s *QuizService) NewSession() (*Session, error) {
	session, err := NewSession(s.questions, s.language)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("quiz session started",
		zap.String("session_id", session.ID.String()),
		zap.String("language", session.Language().String()),
	)

	return session, nil
}
