package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithRequestID creates a logger carrying the request id of the current call
func WithRequestID(requestID string) *Logger {
	logger := New()
	if requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithTeam adds the team id field used across registration logs
func (l *Logger) WithTeam(teamID string) *Logger {
	return l.WithField("team_id", teamID)
}
