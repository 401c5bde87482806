package diag

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsoleSink returns a Sink writing human-readable output to stdout
// at debug level. Intended for examples and manual testing.
func NewConsoleSink() Sink {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return NewZapSink(zap.New(consoleCore))
}
