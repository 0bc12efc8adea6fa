package core

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

// Logger returns the process-wide logger, writing to stderr until SetLogOutput is called
func Logger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "balloon",
		})
		logger.SetLevel(log.InfoLevel)
	})
	return logger
}

// SetLogOutput redirects the logger, terminal hosts must not write to the screen
func SetLogOutput(w io.Writer) {
	Logger().SetOutput(w)
}

// SetLogLevel parses and applies a level name, unknown names fall back to info
func SetLogLevel(name string) {
	level, err := log.ParseLevel(name)
	if err != nil {
		Logger().Warn("unknown log level, using info", "level", name)
		level = log.InfoLevel
	}
	Logger().SetLevel(level)
}

func LogDebug(msg string, keyvals ...any) {
	Logger().Helper()
	Logger().Debug(msg, keyvals...)
}

func LogInfo(msg string, keyvals ...any) {
	Logger().Helper()
	Logger().Info(msg, keyvals...)
}

func LogWarn(msg string, keyvals ...any) {
	Logger().Helper()
	Logger().Warn(msg, keyvals...)
}

func LogError(msg string, keyvals ...any) {
	Logger().Helper()
	Logger().Error(msg, keyvals...)
}
