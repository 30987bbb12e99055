package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

type appNameHook struct {
	appName string
}

// Levels implements logrus.Hook interface.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook interface.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// InitLogger starts the logger at INFO; the configured level is applied
// via SetLogLevel once configuration has been loaded.
func InitLogger(appName string) {
	Logger.SetOutput(os.Stdout)
	Logger.SetLevel(logrus.InfoLevel)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Logger.AddHook(&appNameHook{appName})
}

func SetLogLevel(levelStr string) {
	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', staying at INFO", levelStr)
		return
	}
	Logger.SetLevel(level)
}
