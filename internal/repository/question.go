// Package repository provides file-backed access to the question bank.
package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

//go:embed data/questions.yaml
var defaultBank []byte

// QuestionRepository serves the question bank from memory. The bank is read
// once, from a YAML file or from the copy embedded in the binary.
type QuestionRepository struct {
	questions []entities.Question
}

// NewQuestionRepository loads the bank from path, or the embedded default
// bank when path is empty.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	data := defaultBank
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read question bank: %w", err)
		}
	}

	questions, err := parseQuestions(data)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{questions: questions}, nil
}

// GetAll returns a copy of the question list in bank order.
func (r *QuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	out := make([]entities.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}

func parseQuestions(data []byte) ([]entities.Question, error) {
	var wrapper struct {
		Questions []entities.Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question bank: %w", err)
	}

	for i := range wrapper.Questions {
		wrapper.Questions[i].ID = i
	}

	return wrapper.Questions, nil
}
