package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

const (
	colorTitle   = lipgloss.Color("45")
	colorMuted   = lipgloss.Color("242")
	colorCursor  = lipgloss.Color("212")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorWarning = lipgloss.Color("214")
	progressLen  = 30
)

// renderQuiz renders the header, the active question and the key help.
func (m Model) renderQuiz() string {
	t := m.labels()

	q, err := m.session.Question(m.question)
	if err != nil {
		return err.Error()
	}

	header := m.renderHeader(t)
	progress := m.renderProgress(t)
	dots := m.renderDots()
	body := m.renderQuestion(t, q)

	finish := stylize("["+t.FinishTest+"]", m.noColor, colorMuted)
	if m.session.CanFinish() {
		finish = stylize("["+t.FinishTest+"]", m.noColor, colorCorrect)
	}

	parts := []string{header, progress, dots, "", body, "", finish}
	if m.notice != "" {
		parts = append(parts, stylize(m.notice, m.noColor, colorWarning))
	}
	parts = append(parts, "", renderHelp(m.keys.quizHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader(t i18n.Strings) string {
	title := t.Title + " (" + strings.ToUpper(m.session.Language().String()) + ")"
	return stylize(title, m.noColor, colorTitle) + "   " + stylize(t.SwitchLanguage+" [l]", m.noColor, colorMuted)
}

func (m Model) renderProgress(t i18n.Strings) string {
	progress := m.session.Progress()
	answered := m.session.Engine().AnsweredCount()
	return fmt.Sprintf("%s %.0f%%\n%s",
		t.Progress,
		progress,
		service.ProgressBar(answered, m.session.Total(), progressLen),
	)
}

// renderDots renders one marker per question: filled when answered, the
// current question is highlighted.
func (m Model) renderDots() string {
	marks := make([]string, m.session.Total())
	for i := range marks {
		mark := "○"
		if m.session.Engine().Answered(i) {
			mark = "●"
		}
		if i == m.question {
			mark = stylize(mark, m.noColor, colorCursor)
		}
		marks[i] = mark
	}
	return strings.Join(marks, " ")
}

func (m Model) renderQuestion(t i18n.Strings, q entities.LocalizedQuestion) string {
	var sb strings.Builder

	heading := fmt.Sprintf("%s %d %s %d", t.Question, m.question+1, t.Of, m.session.Total())
	sb.WriteString(stylize(heading, m.noColor, colorMuted))
	if q.Multiple {
		sb.WriteString("  " + stylize("["+t.SeveralAnswers+"]", m.noColor, colorTitle))
	}
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(!m.noColor).Render(q.Text))
	sb.WriteString("\n")

	draft, err := m.session.Draft(m.question)
	if err != nil {
		return sb.String()
	}

	answer, answered := m.session.Engine().Answer(m.question)

	if q.Multiple && !answered {
		sb.WriteString(stylize(fmt.Sprintf("%s %d/%d", t.ChooseAnswers, len(draft.Chosen()), draft.Required()), m.noColor, colorMuted))
		sb.WriteString("\n")
	}

	for i, option := range q.Options {
		pointer := "  "
		if i == m.cursor && !answered {
			pointer = stylize("> ", m.noColor, colorCursor)
		}
		sb.WriteString(pointer + optionMarker(q.Multiple, draft.IsChosen(i)) + " " + option)
		if answered {
			sb.WriteString(m.optionVerdict(q, i, draft.IsChosen(i)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	switch {
	case answered && answer.IsCorrect:
		sb.WriteString(stylize("✓ "+t.Correct, m.noColor, colorCorrect))
	case answered:
		sb.WriteString(stylize("✗ "+t.Incorrect, m.noColor, colorWrong))
	case draft.CanConfirm():
		sb.WriteString(stylize("["+t.Confirm+"]", m.noColor, colorCorrect))
	default:
		sb.WriteString(stylize("["+t.Confirm+"]", m.noColor, colorMuted))
	}

	return sb.String()
}

// optionVerdict marks correct options and wrongly chosen ones after grading.
func (m Model) optionVerdict(q entities.LocalizedQuestion, index int, chosen bool) string {
	correct := false
	for _, c := range q.CorrectAnswers {
		if c == q.Options[index] {
			correct = true
			break
		}
	}
	switch {
	case correct:
		return " " + stylize("✓", m.noColor, colorCorrect)
	case chosen:
		return " " + stylize("✗", m.noColor, colorWrong)
	default:
		return ""
	}
}

func optionMarker(multiple, chosen bool) string {
	switch {
	case multiple && chosen:
		return "[x]"
	case multiple:
		return "[ ]"
	case chosen:
		return "(•)"
	default:
		return "( )"
	}
}

// renderResults renders the score, the grade message and the review table.
func (m Model) renderResults() string {
	t := m.labels()
	res := m.results

	title := stylize(t.TestResults, m.noColor, colorTitle)

	color := colorWrong
	switch {
	case res.Score >= 80:
		color = colorCorrect
	case res.Score >= 60:
		color = colorWarning
	}

	score := fmt.Sprintf("%s: %s", t.Result, stylize(fmt.Sprintf("%.0f%%", res.Score), m.noColor, color))
	counts := fmt.Sprintf("%s %d %s %d", t.CorrectAnswers, res.Correct, t.OutOf, res.Total)
	message := t.ResultMessage(string(res.Grade))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		score,
		service.ProgressBar(res.Correct, res.Total, progressLen),
		counts,
		message,
		"",
		stylize(t.DetailedReview, m.noColor, colorMuted),
		m.review.View(),
		stylize("["+t.TryAgain+"]", m.noColor, colorCorrect),
		"",
		renderHelp(m.keys.resultsHelp()),
	)
}

// reviewColumns sizes the review table for the terminal width.
func reviewColumns(t i18n.Strings, width int) []table.Column {
	rest := max(width-12, 30)
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: t.Question, Width: rest * 2 / 4},
		{Title: t.YourAnswer, Width: rest / 4},
		{Title: t.CorrectAnswer, Width: rest / 4},
		{Title: "", Width: 2},
	}
}

func reviewRows(res *service.Results) []table.Row {
	rows := make([]table.Row, 0, len(res.Review))
	for _, entry := range res.Review {
		verdict := "✗"
		if entry.IsCorrect {
			verdict = "✓"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", entry.Index+1),
			entry.Question,
			strings.Join(entry.Selected, ", "),
			strings.Join(entry.Correct, ", "),
			verdict,
		})
	}
	return rows
}

func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(false)
		styles.Selected = lipgloss.NewStyle()
		styles.Cell = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(colorTitle).Bold(true)
	styles.Selected = styles.Selected.Foreground(colorCursor).Bold(false)
	return styles
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
