// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

// Bot-level messages shown before a session language is known.
const (
	msgWelcome = "Вітаємо! Це двомовний тест.\n" +
		"Welcome! This is a bilingual quiz.\n\n" +
		"/quiz — почати тест / start the quiz\n" +
		"/lang — змінити мову / switch language\n" +
		"/progress — прогрес / progress\n" +
		"/finish — завершити тест / finish the quiz\n" +
		"/stop — припинити тест / stop the quiz"
	msgStopped        = "Тест припинено. / Quiz stopped.\nПочніть знову командою /quiz. / Start again with /quiz."
	msgQuizInProgress = "Тест ще триває. / The quiz is still in progress."
	msgNoSession      = "Почніть тест командою /quiz.\nStart a quiz with /quiz."
	msgSessionExpired = "Цей тест уже неактуальний. / This quiz is no longer active."
	msgInternalError  = "Щось пішло не так. Спробуйте пізніше.\nSomething went wrong. Please try again later."
	msgUnknownCommand = "Невідома команда. / Unknown command.\n\n" +
		"/quiz /lang /progress /finish /stop"
)

const (
	progressBarLength = 10

	// maxMessageLength is Telegram's limit for one message text. Byte length
	// never undercounts it.
	maxMessageLength = 4096
)

// formatQuestion formats one question (MarkdownV2 safe). answer is nil while
// the question is still open.
func formatQuestion(
	t i18n.Strings,
	q entities.LocalizedQuestion,
	index, total int,
	draft *service.SelectionDraft,
	answer *entities.Answer,
) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("%s %d %s %d", t.Question, index+1, t.Of, total)))
	if q.Multiple {
		sb.WriteString(" ")
		sb.WriteString(italic("(" + t.SeveralAnswers + ")"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(md(q.Text))

	if answer != nil {
		sb.WriteString("\n\n")
		sb.WriteString(formatAnswerFeedback(t, *answer))
		return sb.String()
	}

	if q.Multiple {
		sb.WriteString("\n\n")
		sb.WriteString(md(fmt.Sprintf("%s %d/%d", t.ChooseAnswers, len(draft.Chosen()), draft.Required())))
	}

	return sb.String()
}

// formatAnswerFeedback formats feedback for a graded answer (MarkdownV2 safe).
func formatAnswerFeedback(t i18n.Strings, a entities.Answer) string {
	if a.IsCorrect {
		return md("✅ " + t.Correct)
	}
	return fmt.Sprintf(
		"%s\n%s %s",
		md("❌ "+t.Incorrect),
		md(t.CorrectAnswer),
		bold(strings.Join(a.CorrectAnswers, ", ")),
	)
}

// formatProgress formats the progress summary of a session (MarkdownV2 safe).
func formatProgress(t i18n.Strings, s *service.Session) string {
	answered := s.Engine().AnsweredCount()

	return fmt.Sprintf(
		"%s %s\n%s\n%s",
		md(t.Progress+":"),
		bold(fmt.Sprintf("%.0f%%", s.Progress())),
		md(service.ProgressBar(answered, s.Total(), progressBarLength)),
		md(fmt.Sprintf("%d/%d", answered, s.Total())),
	)
}

// formatQuizResult formats the results screen with a detailed review
// (MarkdownV2 safe). Long reviews are split on entry boundaries into several
// messages, each within Telegram's message length limit.
func formatQuizResult(t i18n.Strings, res *service.Results) []string {
	var sb strings.Builder

	sb.WriteString(bold("🏁 " + t.TestResults))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", md(t.Result+":"), bold(fmt.Sprintf("%.0f%%", res.Score))))
	sb.WriteString(md(service.ProgressBar(res.Correct, res.Total, progressBarLength)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("%s %d %s %d", t.CorrectAnswers, res.Correct, t.OutOf, res.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(md(t.ResultMessage(string(res.Grade))))
	sb.WriteString("\n\n")
	sb.WriteString(bold(t.DetailedReview))

	blocks := make([]string, 0, len(res.Review)+1)
	blocks = append(blocks, sb.String())
	for _, e := range res.Review {
		blocks = append(blocks, formatReviewEntry(t, e))
	}

	return joinChunks(blocks, "\n\n", maxMessageLength)
}

func formatReviewEntry(t i18n.Strings, e service.ReviewEntry) string {
	mark := "✅"
	if !e.IsCorrect {
		mark = "❌"
	}

	entry := md(fmt.Sprintf("%s %d. %s", mark, e.Index+1, e.Question)) +
		"\n" + md(t.YourAnswer+" "+strings.Join(e.Selected, ", "))
	if !e.IsCorrect {
		entry += "\n" + md(t.CorrectAnswer+" "+strings.Join(e.Correct, ", "))
	}
	return entry
}

// joinChunks joins blocks with sep into as few texts of at most limit bytes
// as possible. A block is never split across two texts; a block longer than
// limit on its own is truncated.
func joinChunks(blocks []string, sep string, limit int) []string {
	var (
		chunks []string
		cur    strings.Builder
	)

	for _, b := range blocks {
		b = truncateMarkdown(b, limit)
		if cur.Len() > 0 && cur.Len()+len(sep)+len(b) > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(sep)
		}
		cur.WriteString(b)
	}

	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// truncateMarkdown cuts escaped MarkdownV2 text to at most limit bytes on a
// rune boundary without leaving a dangling escape backslash.
func truncateMarkdown(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	s = s[:cut]

	if trailing := len(s) - len(strings.TrimRight(s, `\`)); trailing%2 == 1 {
		s = s[:len(s)-1]
	}
	return s
}
