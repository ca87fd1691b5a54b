package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Front ends that can drive a quiz session.
const (
	FrontendTUI      = "tui"
	FrontendTelegram = "telegram"
)

// Question bank sources.
const (
	BankSourceFile     = "file"
	BankSourcePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string            `mapstructure:"env"`      // current application environment (local, dev, production etc)
	Frontend         string            `mapstructure:"frontend"` // tui or telegram
	Language         string            `mapstructure:"language"` // language new sessions start in
	Lang             entities.Language `mapstructure:"-"`        // parsed Language
	TelegramAPIToken string            `mapstructure:"-"`        // Telegram API token loaded from environment
	Bank             Bank              `mapstructure:"bank"`     // question bank section
	Log              Log               `mapstructure:"log"`      // logging section
	DB               DB                `mapstructure:"database"` // database configuration section
}

// Bank selects where the question bank is read from.
type Bank struct {
	Source string `mapstructure:"source"` // file or postgres
	Path   string `mapstructure:"path"`   // YAML bank path; empty means the embedded bank
}

// Log configures the zap logger output.
type Log struct {
	File string `mapstructure:"file"` // log file path; empty means stderr
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values already present in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("frontend", FrontendTUI)
	v.SetDefault("language", string(entities.LanguageUkrainian))
	v.SetDefault("bank.source", BankSourceFile)
	v.SetDefault("bank.path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("frontend", "QUIZ_FRONTEND")
	_ = v.BindEnv("language", "QUIZ_LANGUAGE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) validate() error {
	lang, err := entities.ParseLanguage(cfg.Language)
	if err != nil {
		return fmt.Errorf("%w: language: %w", ErrInvalidConfig, err)
	}
	cfg.Lang = lang

	switch cfg.Frontend {
	case FrontendTUI:
		// The terminal owns stdout and stderr while the UI runs.
		if cfg.Log.File == "" {
			cfg.Log.File = "quiz.log"
		}
	case FrontendTelegram:
		if cfg.TelegramAPIToken == "" {
			return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
		}
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, cfg.Frontend)
	}

	switch cfg.Bank.Source {
	case BankSourceFile:
	case BankSourcePostgres:
		if cfg.DB.URL == "" {
			return fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
		}
	default:
		return fmt.Errorf("%w: unknown bank source %q", ErrInvalidConfig, cfg.Bank.Source)
	}

	return nil
}
