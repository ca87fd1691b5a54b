// Package tui renders a quiz session in the terminal with Bubble Tea.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

// Model renders one quiz session and forwards key presses to it.
type Model struct {
	session  *service.Session
	dict     *i18n.Dictionary
	logger   *zap.Logger
	keys     keyMap
	question int // question on screen
	cursor   int // highlighted option
	results  *service.Results
	review   table.Model
	notice   string
	width    int
	noColor  bool
}

// Options configures the terminal UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a terminal UI model for a session.
func NewModel(session *service.Session, dict *i18n.Dictionary, logger *zap.Logger, opts Options) Model {
	t := table.New(
		table.WithColumns(reviewColumns(dict.MustLookup(session.Language()), 80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	return Model{
		session: session,
		dict:    dict,
		logger:  logger,
		keys:    defaultKeyMap(),
		review:  t,
		width:   80,
		noColor: opts.NoColor,
	}
}

// Init has nothing to start; the UI only reacts to keys.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.review.SetWidth(typed.Width)
		m.review.SetHeight(max(typed.Height-10, 3))
		m.review.SetColumns(reviewColumns(m.labels(), typed.Width))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Language):
		lang := m.session.ToggleLanguage()
		m.logger.Debug("language switched",
			zap.String("session_id", m.session.ID.String()),
			zap.String("language", lang.String()),
		)
		m.notice = ""
		m.review.SetColumns(reviewColumns(m.labels(), m.width))
		return m, nil
	}

	if m.results != nil {
		return m.handleResultsKey(msg)
	}
	return m.handleQuizKey(msg)
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Restart) {
		m.session.Restart()
		m.logger.Info("quiz restarted", zap.String("session_id", m.session.ID.String()))
		m.results = nil
		m.question, m.cursor = 0, 0
		m.notice = ""
		m.review.SetRows([]table.Row{})
		return m, nil
	}

	var cmd tea.Cmd
	m.review, cmd = m.review.Update(msg)
	return m, cmd
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, err := m.session.Question(m.question)
	if err != nil {
		m.logger.Error("question lookup failed", zap.Int("question", m.question), zap.Error(err))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Next):
		m.goTo(m.question + 1)
	case key.Matches(msg, m.keys.Prev):
		m.goTo(m.question - 1)
	case key.Matches(msg, m.keys.Choose):
		if err := m.session.Choose(m.question, m.cursor); err != nil {
			m.logger.Error("choose failed", zap.Int("question", m.question), zap.Error(err))
		}
		m.notice = ""
	case key.Matches(msg, m.keys.Confirm):
		m.confirm()
	case key.Matches(msg, m.keys.Finish):
		m.finish()
	}

	return m, nil
}

func (m *Model) goTo(index int) {
	total := m.session.Total()
	m.question = ((index % total) + total) % total
	m.cursor = 0
	m.notice = ""
}

func (m *Model) confirm() {
	recorded, err := m.session.Confirm(m.question)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidSelectionCount) {
			m.logger.Error("confirm failed", zap.Int("question", m.question), zap.Error(err))
		}
		return
	}
	if !recorded {
		return
	}

	answer, _ := m.session.Engine().Answer(m.question)
	m.logger.Debug("answer recorded",
		zap.String("session_id", m.session.ID.String()),
		zap.Int("question", m.question),
		zap.Bool("correct", answer.IsCorrect),
		zap.Float64("progress", m.session.Progress()),
	)
}

func (m *Model) finish() {
	if !m.session.Finish() {
		m.notice = m.labels().AnswerAllFirst
		return
	}

	results, err := m.session.Results()
	if err != nil {
		m.logger.Error("results failed", zap.Error(err))
		return
	}

	m.logger.Info("quiz finished",
		zap.String("session_id", m.session.ID.String()),
		zap.Float64("score", results.Score),
		zap.String("grade", string(results.Grade)),
	)

	m.results = results
	m.notice = ""
	m.review.SetRows(reviewRows(results))
	m.review.GotoTop()
}

// View renders the current question or the results.
func (m Model) View() string {
	if m.results != nil {
		return m.renderResults()
	}
	return m.renderQuiz()
}

func (m Model) labels() i18n.Strings {
	return m.dict.MustLookup(m.session.Language())
}
