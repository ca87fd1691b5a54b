package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

var ErrNotTerminal = errors.New("terminal UI needs a TTY on stdin and stdout")

// isTerminal reports whether a file is a TTY.
var isTerminal = defaultIsTerminal

func defaultIsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Run shows the quiz on the process terminal until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, session *service.Session, dict *i18n.Dictionary, logger *zap.Logger) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	program := tea.NewProgram(
		NewModel(session, dict, logger, Options{}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return context.Canceled
		}
		return err
	}

	logger.Info("quiz closed",
		zap.String("session_id", session.ID.String()),
		zap.Bool("finished", session.Finished()),
	)
	return nil
}
