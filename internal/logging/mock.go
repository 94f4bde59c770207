package logging

import "fmt"

// MockLogger is a mock implementation of the Logger interface for testing.
// It captures log entries for verification in tests. Derived loggers from
// WithError/WithField/WithFields record into the root mock, so a test can
// hand out children and still assert on the original.
type MockLogger struct {
	Entries       []LogEntry
	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	target := m
	if m.root != nil {
		target = m.root
	}
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	target.Entries = append(target.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) derive(err error, fields []Field) *MockLogger {
	root := m.root
	if root == nil {
		root = m
	}
	if err == nil {
		err = m.pendingError
	}
	return &MockLogger{
		root:          root,
		pendingError:  err,
		pendingFields: append(append([]Field{}, m.pendingFields...), fields...),
	}
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// WithError returns a new logger with an error field attached.
func (m *MockLogger) WithError(err error) Logger {
	return m.derive(err, nil)
}

// WithField returns a new logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.derive(nil, []Field{{Key: key, Value: value}})
}

// WithFields returns a new logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return m.derive(nil, fields)
}

// Fatal logs a fatal-level message. The mock does not exit.
func (m *MockLogger) Fatal(msg string, fields ...Field) {
	m.record("FATAL", msg, fields)
}

// Fatalf logs a fatal-level message with formatting. The mock does not exit.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

// EntriesByLevel returns all captured log entries of a specific level.
func (m *MockLogger) EntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.Entries {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// HasEntry checks if a log entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
