package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/bilingual-quiz/internal/config"
	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

func TestRunReturnsErrorForMissingBank(t *testing.T) {
	cfg := &config.Config{
		Env:      "local",
		Frontend: config.FrontendTUI,
		Lang:     entities.LanguageUkrainian,
		Bank: config.Bank{
			Source: config.BankSourceFile,
			Path:   filepath.Join(t.TempDir(), "missing.yaml"),
		},
	}

	err := run(cfg, zap.NewNop())
	if err == nil {
		t.Fatal("expected an error for a missing question bank")
	}
	if !strings.Contains(err.Error(), "open question bank (file)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewQuestionRepositoryFromEmbeddedBank(t *testing.T) {
	cfg := &config.Config{Bank: config.Bank{Source: config.BankSourceFile}}

	repo, closeRepo, err := newQuestionRepository(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newQuestionRepository: %v", err)
	}
	if repo == nil || closeRepo == nil {
		t.Fatal("expected a repository and a close func")
	}
	closeRepo()
}
