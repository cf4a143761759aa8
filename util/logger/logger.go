package logger

import (
	"os"

	"go-greatest/config"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = mustNew(config.NewLoggerConfig())

func New(cfg *config.LoggerConfig) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse log level")
	}

	return &logger.Logger{
		Out:   os.Stderr,
		Level: level,
		Hooks: make(logger.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: cfg.TimestampFormat,
			FullTimestamp:   true,
			ForceFormatting: true,
		},
	}, nil
}

func mustNew(cfg *config.LoggerConfig) *logger.Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}
