package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

// sessionTagLength is how much of the session ID callbacks carry. Buttons of
// a replaced session are recognised as stale by it.
const sessionTagLength = 8

// Handler serves the quiz to Telegram chats, one session per chat.
type Handler struct {
	bot         Bot
	logger      *zap.Logger
	quizService QuizService
	storage     SessionStorage
	dict        Dictionary
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	quizService QuizService,
	storage SessionStorage,
	dict Dictionary,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
		storage:     storage,
		dict:        dict,
	}
}

// Run consumes updates until ctx is cancelled. Updates are handled one at a
// time, so sessions are never touched concurrently.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newMessage(chatID, md(msgUnknownCommand)))
		return
	}

	switch update.Message.Command() {
	case "start":
		h.send(newMessage(chatID, md(msgWelcome)))
		_ = h.withErrorHandling(h.startQuiz)(ctx, chatID)

	case "quiz":
		_ = h.withErrorHandling(h.startQuiz)(ctx, chatID)

	case "lang":
		_ = h.withErrorHandling(h.toggleLanguage)(ctx, chatID)

	case "progress":
		_ = h.withErrorHandling(h.progress)(ctx, chatID)

	case "finish":
		_ = h.withErrorHandling(h.finish)(ctx, chatID)

	case "stop":
		_ = h.withErrorHandling(h.stopQuiz)(ctx, chatID)

	case "help":
		h.send(newMessage(chatID, md(msgWelcome)))

	default:
		h.send(newMessage(chatID, md(msgUnknownCommand)))
	}
}

// startQuiz replaces the chat's session with a fresh one. The language of
// the previous session carries over.
func (h *Handler) startQuiz(_ context.Context, chatID int64) error {
	s, err := h.quizService.NewSession()
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	if prev, ok := h.storage.Get(chatID); ok && prev.Language() != s.Language() {
		s.ToggleLanguage()
	}
	h.storage.Store(chatID, s)

	h.logger.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", s.ID.String()),
		zap.Stringer("language", s.Language()),
		zap.Int("active_sessions", h.storage.Len()),
	)

	return h.sendQuestion(chatID, s, 0)
}

// stopQuiz drops the chat's session. Buttons of the dropped quiz go stale.
func (h *Handler) stopQuiz(_ context.Context, chatID int64) error {
	s, ok := h.storage.Get(chatID)
	if !ok {
		h.send(newMessage(chatID, md(msgNoSession)))
		return nil
	}

	h.storage.Delete(chatID)
	h.logger.Info("quiz stopped",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", s.ID.String()),
		zap.Int("active_sessions", h.storage.Len()),
	)

	h.send(newMessage(chatID, md(msgStopped)))
	return nil
}

func (h *Handler) toggleLanguage(_ context.Context, chatID int64) error {
	s, ok := h.storage.Get(chatID)
	if !ok {
		h.send(newMessage(chatID, md(msgNoSession)))
		return nil
	}

	lang := s.ToggleLanguage()
	h.logger.Debug("language switched",
		zap.String("session_id", s.ID.String()),
		zap.Stringer("language", lang),
	)

	return h.sendCurrent(chatID, s)
}

func (h *Handler) progress(_ context.Context, chatID int64) error {
	s, ok := h.storage.Get(chatID)
	if !ok {
		h.send(newMessage(chatID, md(msgNoSession)))
		return nil
	}

	t, err := h.texts(s)
	if err != nil {
		return err
	}

	h.send(newMessage(chatID, formatProgress(t, s)))
	return nil
}

func (h *Handler) finish(_ context.Context, chatID int64) error {
	s, ok := h.storage.Get(chatID)
	if !ok {
		h.send(newMessage(chatID, md(msgNoSession)))
		return nil
	}

	t, err := h.texts(s)
	if err != nil {
		return err
	}

	if !s.Finish() {
		h.send(newMessage(chatID, md(t.AnswerAllFirst)))
		return nil
	}

	return h.sendResults(chatID, s)
}

// sendCurrent shows the next open question, the finish prompt, or the
// results, depending on where the session is.
func (h *Handler) sendCurrent(chatID int64, s *service.Session) error {
	if s.Finished() {
		return h.sendResults(chatID, s)
	}
	if next, ok := s.NextUnanswered(0); ok {
		return h.sendQuestion(chatID, s, next)
	}
	return h.sendFinishPrompt(chatID, s)
}

func (h *Handler) sendQuestion(chatID int64, s *service.Session, index int) error {
	text, kb, err := h.questionView(s, index)
	if err != nil {
		return err
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
	return nil
}

func (h *Handler) sendFinishPrompt(chatID int64, s *service.Session) error {
	t, err := h.texts(s)
	if err != nil {
		return err
	}

	msg := newMessage(chatID, formatProgress(t, s))
	msg.ReplyMarkup = buildFinishKeyboard(t, sessionTag(s))
	h.send(msg)
	return nil
}

func (h *Handler) sendResults(chatID int64, s *service.Session) error {
	t, err := h.texts(s)
	if err != nil {
		return err
	}

	res, err := s.Results()
	if err != nil {
		return fmt.Errorf("results: %w", err)
	}

	h.logger.Info("quiz finished",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", s.ID.String()),
		zap.Float64("score", res.Score),
		zap.String("grade", string(res.Grade)),
	)

	chunks := formatQuizResult(t, res)
	for i, text := range chunks {
		msg := newMessage(chatID, text)
		if i == len(chunks)-1 {
			msg.ReplyMarkup = buildResultKeyboard(t, sessionTag(s))
		}
		h.send(msg)
	}
	return nil
}

// questionView renders the question at index with the keyboard matching its
// state.
func (h *Handler) questionView(s *service.Session, index int) (string, tgbotapi.InlineKeyboardMarkup, error) {
	t, err := h.texts(s)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	q, err := s.Question(index)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("question %d: %w", index, err)
	}

	draft, err := s.Draft(index)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("draft %d: %w", index, err)
	}

	tag := sessionTag(s)
	if a, ok := s.Engine().Answer(index); ok {
		return formatQuestion(t, q, index, s.Total(), draft, &a), buildAnsweredKeyboard(t, tag, index, q, draft), nil
	}

	return formatQuestion(t, q, index, s.Total(), draft, nil), buildQuestionKeyboard(t, tag, index, q, draft), nil
}

func (h *Handler) texts(s *service.Session) (i18n.Strings, error) {
	t, err := h.dict.Lookup(s.Language())
	if err != nil {
		return i18n.Strings{}, fmt.Errorf("lookup strings: %w", err)
	}
	return t, nil
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newMessage(chatID, md(text)))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

func sessionTag(s *service.Session) string {
	return s.ID.String()[:sessionTagLength]
}
