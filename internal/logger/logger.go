package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with application-specific configuration
type Logger struct {
	*logrus.Logger
}

// New creates a new configured logger instance
func New(level string) *Logger {
	log := logrus.New()

	log.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	return &Logger{Logger: log}
}

// NewDevelopment creates a logger with human-readable output for development
func NewDevelopment(level string) *Logger {
	log := logrus.New()

	log.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	return &Logger{Logger: log}
}

// WithComponent returns a logger entry tagged with a component name
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}
