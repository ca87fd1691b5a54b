package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/bilingual-quiz/internal/config"
	"github.com/aliskhannn/bilingual-quiz/internal/delivery/telegram"
	"github.com/aliskhannn/bilingual-quiz/internal/delivery/tui"
	"github.com/aliskhannn/bilingual-quiz/internal/i18n"
	"github.com/aliskhannn/bilingual-quiz/internal/infra/postgres"
	pgrepository "github.com/aliskhannn/bilingual-quiz/internal/infra/postgres/repository"
	"github.com/aliskhannn/bilingual-quiz/internal/logger"
	"github.com/aliskhannn/bilingual-quiz/internal/repository"
	"github.com/aliskhannn/bilingual-quiz/internal/service"
	"github.com/aliskhannn/bilingual-quiz/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = run(cfg, lg)
	if err != nil {
		lg.Error("quiz stopped with error", zap.String("frontend", cfg.Frontend), zap.Error(err))
	} else {
		lg.Info("shutdown complete")
	}
	_ = lg.Sync()

	if err != nil {
		os.Exit(1)
	}
}

// run loads the question bank and serves the configured front end until it
// stops. Everything it opens is released before it returns.
func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newQuestionRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open question bank (%s): %w", cfg.Bank.Source, err)
	}
	defer closeRepo()

	quizService, err := service.NewQuizService(ctx, repo, cfg.Lang, lg)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	dict, err := i18n.Default()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	switch cfg.Frontend {
	case config.FrontendTelegram:
		err = runTelegram(ctx, cfg, lg, quizService, dict)
	default:
		err = runTUI(ctx, lg, quizService, dict)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newQuestionRepository opens the configured question bank. The returned
// func releases whatever the source holds open.
func newQuestionRepository(ctx context.Context, cfg *config.Config) (service.QuestionRepository, func(), error) {
	if cfg.Bank.Source != config.BankSourcePostgres {
		repo, err := repository.NewQuestionRepository(cfg.Bank.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	return pgrepository.NewQuestionRepository(postgres.NewTransactor(pool)), pool.Close, nil
}

func runTUI(ctx context.Context, lg *zap.Logger, quizService *service.QuizService, dict *i18n.Dictionary) error {
	session, err := quizService.NewSession()
	if err != nil {
		return err
	}
	return tui.Run(ctx, session, dict, lg)
}

func runTelegram(
	ctx context.Context,
	cfg *config.Config,
	lg *zap.Logger,
	quizService *service.QuizService,
	dict *i18n.Dictionary,
) error {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env == "local"

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Почати / Start"},
		{Command: "quiz", Description: "Новий тест / New quiz"},
		{Command: "lang", Description: "Змінити мову / Switch language"},
		{Command: "progress", Description: "Прогрес / Progress"},
		{Command: "finish", Description: "Завершити тест / Finish the quiz"},
		{Command: "stop", Description: "Припинити тест / Stop the quiz"},
		{Command: "help", Description: "Допомога / Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	handler := telegram.NewHandler(bot, lg, quizService, storage.NewSessionStorage(), dict)
	err = handler.Run(ctx)
	bot.StopReceivingUpdates()
	return err
}
