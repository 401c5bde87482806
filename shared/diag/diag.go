package diag

import (
	"go.uber.org/zap"
)

// Level defines the severity level for diagnostic reports.
type Level string

const (
	// LevelInfo is used for general informational reports.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for contract violations and other defects.
	LevelError Level = "error"

	// LevelDebug is used for detailed internal information.
	LevelDebug Level = "debug"
)

// Report is the payload structure for a single diagnostic event.
// It contains the severity level, message string, and optional structured fields.
type Report struct {
	Level   Level
	Message string
	Fields  map[string]interface{}
}

// Sink consumes diagnostic reports. Producers treat it as an opaque
// collaborator: Emit must not block and must not panic.
type Sink interface {
	Emit(report Report)
}

type zapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a Sink backed by the given zap.Logger.
// Callers remain responsible for syncing the logger on shutdown.
func NewZapSink(logger *zap.Logger) Sink {
	return zapSink{logger: logger}
}

func (s zapSink) Emit(report Report) {
	fields := make([]zap.Field, 0, len(report.Fields))
	for k, v := range report.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch report.Level {
	case LevelInfo:
		s.logger.Info(report.Message, fields...)
	case LevelWarn:
		s.logger.Warn(report.Message, fields...)
	case LevelError:
		s.logger.Error(report.Message, fields...)
	case LevelDebug:
		s.logger.Debug(report.Message, fields...)
	default:
		s.logger.Info(report.Message, fields...)
	}
}

type nopSink struct{}

func (nopSink) Emit(Report) {}

// NopSink returns a Sink that discards every report.
func NopSink() Sink {
	return nopSink{}
}
