package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
)

// Bot is the part of the Telegram Bot API the handler talks to.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type QuizService interface {
	NewSession() (*service.Session, error)
}

type SessionStorage interface {
	Store(chatID int64, session *service.Session)
	Get(chatID int64) (*service.Session, bool)
	Delete(chatID int64)
	Len() int
}

type Dictionary interface {
	Lookup(lang entities.Language) (i18n.Strings, error)
}
