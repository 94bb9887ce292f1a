// internal/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New создаёт логгер приложения.
// Уровень берётся из LOG_LEVEL (по умолчанию "info"),
// формат из LOG_FORMAT: "json" для сбора логов, иначе текст.
func New() *logrus.Logger {
	log := logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(os.Stdout)
	return log
}

// Discard возвращает логгер, который ничего не пишет. Удобен в тестах.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// For возвращает запись логгера, помеченную именем подсистемы.
func For(log *logrus.Logger, system string) *logrus.Entry {
	if log == nil {
		log = Discard()
	}
	return log.WithField("system", system)
}
