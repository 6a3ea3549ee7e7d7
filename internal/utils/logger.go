package utils

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yonasBSD/solidtime/internal/config"
)

// New creates a logrus.Logger writing JSON to stderr. Development runs log
// at debug level unless LOG_LEVEL says otherwise.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.JSONFormatter{})

	if cfg.Env == "development" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	if cfg.LogLevel != "" {
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		} else {
			log.WithField("log_level", cfg.LogLevel).Warn("ignoring unknown log level")
		}
	}

	return log
}
