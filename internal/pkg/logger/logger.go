package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func init() {
	// Plain stdout/stderr loggers so packages can log before InitLoggers
	// runs (and in tests, which never call it).
	InfoLogger = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)
}

// InitLoggers switches both loggers to a rotating log file mirrored to the
// console. Called once from main.
func InitLoggers() {
	rotator := &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}

	InfoLogger = newLogger(io.MultiWriter(os.Stdout, rotator), logrus.InfoLevel)
	ErrorLogger = newLogger(io.MultiWriter(os.Stderr, rotator), logrus.ErrorLevel)
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	return l
}
