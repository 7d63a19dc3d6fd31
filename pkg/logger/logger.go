package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with additional functionality
type Logger struct {
	*logrus.Logger
}

// New creates a new logger instance
func New(level string) *Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	log.SetOutput(os.Stdout)

	return &Logger{Logger: log}
}

// WithFields creates a new logger entry with the specified fields
func (l *Logger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return l.Logger.WithFields(fields)
}

// WithField creates a new logger entry with a single field
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField(key, value)
}

// WithError creates a new logger entry with an error field
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithError(err)
}

// WithActor creates a new logger entry with actor id and role fields
func (l *Logger) WithActor(actorID, role string) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"actor_id": actorID,
		"role":     role,
	})
}

// WithAppointment creates a new logger entry with an appointment id field
func (l *Logger) WithAppointment(appointmentID string) *logrus.Entry {
	return l.Logger.WithField("appointment_id", appointmentID)
}

// WithComponent creates a new logger entry with component name field
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.Logger.WithField("component", component)
}

// StoreOperation logs a persistence operation outcome with structured format
func (l *Logger) StoreOperation(operation, entity string, durationMs int64, success bool, details map[string]interface{}) {
	entry := l.Logger.WithFields(logrus.Fields{
		"store":       true,
		"operation":   operation,
		"entity":      entity,
		"duration_ms": durationMs,
		"success":     success,
		"details":     details,
	})

	if success {
		entry.Info("Store operation completed")
	} else {
		entry.Error("Store operation failed")
	}
}

// HTTPRequest logs HTTP request events
func (l *Logger) HTTPRequest(method, path, clientIP string, statusCode int, durationMs int64) {
	entry := l.Logger.WithFields(logrus.Fields{
		"http_request": true,
		"method":       method,
		"path":         path,
		"client_ip":    clientIP,
		"status_code":  statusCode,
		"duration_ms":  durationMs,
	})

	if statusCode >= 400 {
		entry.Warn("HTTP request completed with error")
	} else {
		entry.Info("HTTP request completed")
	}
}
