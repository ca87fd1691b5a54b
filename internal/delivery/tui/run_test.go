package tui

import (
	"context"
	"errors"
	"os"
	"testing"

	"go.uber.org/zap"
)

func TestRunRequiresTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(*os.File) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	m, session := newTestModel(t)

	err := Run(context.Background(), session, m.dict, zap.NewNop())
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("Run() error = %v, want ErrNotTerminal", err)
	}
}
