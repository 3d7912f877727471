package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// InitLogger sets the level of the shared logger. Called once from main
// before anything else logs.
func InitLogger(level logrus.Level) {
	GetLogger().SetLevel(level)
}

// GetLogger returns the process-wide logger, creating it on first use so
// packages can grab it from init().
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	})
	return logger
}
