package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New собирает JSON-логгер сервиса с уровнем из конфигурации.
// Некорректный уровень не считается ошибкой и приводится к info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.WithField("log_level", logLevel).Warn("Unknown log level, falling back to info")
	}
	log.SetLevel(level)

	return log
}
