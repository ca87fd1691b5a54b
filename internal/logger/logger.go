package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/bilingual-quiz/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Log.File != "" {
		zcfg.OutputPaths = []string{cfg.Log.File}
		zcfg.ErrorOutputPaths = []string{cfg.Log.File}
	}

	return zcfg.Build()
}
