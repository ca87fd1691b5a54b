package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

// buildQuestionKeyboard builds the option buttons of an open question plus
// the confirm button once the selection can be confirmed.
func buildQuestionKeyboard(
	t i18n.Strings,
	tag string,
	index int,
	q entities.LocalizedQuestion,
	draft *service.SelectionDraft,
) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+2)
	for i, option := range q.Options {
		label := optionMarker(q.Multiple, draft.IsChosen(i)) + " " + option
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildOptionCallback(tag, index, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	if draft.CanConfirm() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ "+t.Confirm, buildConfirmCallback(tag, index)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🌐 "+t.SwitchLanguage, buildLangCallback(tag, index)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildAnsweredKeyboard shows the graded options of an answered question.
func buildAnsweredKeyboard(
	t i18n.Strings,
	tag string,
	index int,
	q entities.LocalizedQuestion,
	draft *service.SelectionDraft,
) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		label := gradedMarker(q, i, draft.IsChosen(i)) + " " + option
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildNoopCallback())
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🌐 "+t.SwitchLanguage, buildLangCallback(tag, index)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFinishKeyboard builds keyboard for the finish prompt.
func buildFinishKeyboard(t i18n.Strings, tag string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏁 "+t.FinishTest, buildFinishCallback(tag)),
		),
	)
}

// buildResultKeyboard builds keyboard for quiz results screen.
func buildResultKeyboard(t i18n.Strings, tag string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 "+t.TryAgain, buildRestartCallback(tag)),
		),
	)
}

func optionMarker(multiple, chosen bool) string {
	switch {
	case multiple && chosen:
		return "☑️"
	case multiple:
		return "⬜"
	case chosen:
		return "🔘"
	default:
		return "⚪"
	}
}

func gradedMarker(q entities.LocalizedQuestion, index int, chosen bool) string {
	for _, c := range q.CorrectAnswers {
		if c == q.Options[index] {
			return "✅"
		}
	}
	if chosen {
		return "❌"
	}
	return "▫️"
}
