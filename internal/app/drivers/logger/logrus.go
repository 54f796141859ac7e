package logger

import (
	"os"
	"podium-service/internal/app/config"
	"podium-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

const accessLogFileName = "podium_access.log"

// NewLogrusLogger builds the HTTP access logger. Production writes JSON lines
// to a file, other environments print text to stderr.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile(accessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.WithError(err).Warn("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
