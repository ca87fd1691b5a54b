package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)
	if cb.Message == nil || data.Action == actionNoop {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	s, ok := h.storage.Get(chatID)
	if !ok || data.sessionTag() != sessionTag(s) {
		h.answerCallback(cb.ID, msgSessionExpired)
		return
	}

	var (
		notice string
		err    error
	)

	switch data.Action {
	case actionOption:
		err = h.handleOptionCallback(s, cb.Message, data)
	case actionConfirm:
		notice, err = h.handleConfirmCallback(s, cb.Message, data)
	case actionLang:
		err = h.handleLangCallback(s, cb.Message, data)
	case actionFinish:
		notice, err = h.handleFinishCallback(s, chatID)
	case actionRestart:
		notice, err = h.handleRestartCallback(ctx, s, chatID)
	default:
		h.logger.Warn("unknown callback action",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
		)
	}

	if err != nil {
		h.logger.Error("handle callback",
			zap.Int64("chat_id", chatID),
			zap.String("session_id", s.ID.String()),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		notice = msgInternalError
	}

	h.answerCallback(cb.ID, notice)
}

func (h *Handler) handleOptionCallback(s *service.Session, msg *tgbotapi.Message, data callbackData) error {
	index, err := data.intParam(1)
	if err != nil {
		return err
	}
	option, err := data.intParam(2)
	if err != nil {
		return err
	}

	if err := s.Choose(index, option); err != nil {
		return fmt.Errorf("choose option: %w", err)
	}

	return h.editQuestion(s, msg, index)
}

// handleConfirmCallback grades the draft of a question and moves the chat on
// to the next open question or to the finish prompt.
func (h *Handler) handleConfirmCallback(s *service.Session, msg *tgbotapi.Message, data callbackData) (string, error) {
	index, err := data.intParam(1)
	if err != nil {
		return "", err
	}

	t, err := h.texts(s)
	if err != nil {
		return "", err
	}

	recorded, err := s.Confirm(index)
	if errors.Is(err, service.ErrInvalidSelectionCount) {
		draft, derr := s.Draft(index)
		if derr != nil {
			return "", derr
		}
		return fmt.Sprintf("%s %d/%d", t.ChooseAnswers, len(draft.Chosen()), draft.Required()), nil
	}
	if err != nil {
		return "", fmt.Errorf("confirm: %w", err)
	}
	if !recorded {
		return "", nil
	}

	if err := h.editQuestion(s, msg, index); err != nil {
		return "", err
	}

	answer, _ := s.Engine().Answer(index)
	h.logger.Debug("answer recorded",
		zap.String("session_id", s.ID.String()),
		zap.Int("question", index),
		zap.Bool("correct", answer.IsCorrect),
	)

	if next, ok := s.NextUnanswered(index + 1); ok {
		err = h.sendQuestion(msg.Chat.ID, s, next)
	} else {
		err = h.sendFinishPrompt(msg.Chat.ID, s)
	}
	if err != nil {
		return "", err
	}

	if answer.IsCorrect {
		return t.Correct, nil
	}
	return t.Incorrect, nil
}

func (h *Handler) handleLangCallback(s *service.Session, msg *tgbotapi.Message, data callbackData) error {
	index, err := data.intParam(1)
	if err != nil {
		return err
	}

	s.ToggleLanguage()
	return h.editQuestion(s, msg, index)
}

func (h *Handler) handleFinishCallback(s *service.Session, chatID int64) (string, error) {
	if !s.Finish() {
		t, err := h.texts(s)
		if err != nil {
			return "", err
		}
		return t.AnswerAllFirst, nil
	}
	return "", h.sendResults(chatID, s)
}

// handleRestartCallback starts a fresh session for "try again". Only a
// finished quiz can be restarted; the new session ID makes every button of
// the old run stale.
func (h *Handler) handleRestartCallback(ctx context.Context, s *service.Session, chatID int64) (string, error) {
	if !s.Finished() {
		return msgQuizInProgress, nil
	}

	h.logger.Info("quiz restarted",
		zap.Int64("chat_id", chatID),
		zap.String("previous_session_id", s.ID.String()),
	)
	return "", h.startQuiz(ctx, chatID)
}

// editQuestion redraws the question message in place.
func (h *Handler) editQuestion(s *service.Session, msg *tgbotapi.Message, index int) error {
	text, kb, err := h.questionView(s, index)
	if err != nil {
		return err
	}

	edit := newEdit(msg.Chat.ID, msg.MessageID, text)
	edit.ReplyMarkup = &kb
	h.send(edit)
	return nil
}

// answerCallback removes the user's "clock", optionally with a notice.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
