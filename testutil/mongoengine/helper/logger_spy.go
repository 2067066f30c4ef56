package helper

import (
	"context"
	"sync"
)

// LogRecord represents one captured log call.
type LogRecord struct {
	Level   string
	Message string
	Args    []any
}

// LoggerSpy captures log calls for testing. It implements both the
// leanshape.Logger and leanshape.ContextualLogger interfaces, so a single spy
// can observe either logging path of a Normalizer.
type LoggerSpy struct {
	records []LogRecord
	mu      sync.Mutex
}

// NewLoggerSpy creates a new LoggerSpy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{records: make([]LogRecord, 0)}
}

// Debug implements the Logger interface.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args)
}

// Info implements the Logger interface.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args)
}

// Warn implements the Logger interface.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args)
}

// Error implements the Logger interface.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args)
}

// DebugContext implements the ContextualLogger interface.
func (s *LoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.record("debug", msg, args)
}

// InfoContext implements the ContextualLogger interface.
func (s *LoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.record("info", msg, args)
}

// WarnContext implements the ContextualLogger interface.
func (s *LoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.record("warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface.
func (s *LoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.record("error", msg, args)
}

func (s *LoggerSpy) record(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	argsCopy := make([]any, len(args))
	copy(argsCopy, args)

	s.records = append(s.records, LogRecord{Level: level, Message: msg, Args: argsCopy})
}

// GetRecordCount returns the number of captured log records.
func (s *LoggerSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// GetRecords returns a copy of all captured log records.
func (s *LoggerSpy) GetRecords() []LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]LogRecord, len(s.records))
	copy(records, s.records)

	return records
}

// Reset clears all captured log records.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// HasLog checks for a captured record with the given level and message.
func (s *LoggerSpy) HasLog(level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// HasLogWithAttr checks for a captured record with the given level and message
// that carries the given attribute key among its args.
func (s *LoggerSpy) HasLogWithAttr(level, message, attrKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level != level || record.Message != message {
			continue
		}

		for i := 0; i+1 < len(record.Args); i += 2 {
			if key, ok := record.Args[i].(string); ok && key == attrKey {
				return true
			}
		}
	}

	return false
}
