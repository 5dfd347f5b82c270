package logging

import (
	"encoding/hex"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging
// verbosity. When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "OMNILOGIC_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks OMNILOGIC_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the OMNILOGIC_LOG_LEVEL
// environment variable. This is the recommended way to initialize
// logging for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance.
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogSend logs a message being written to the wire.
func LogSend(remoteAddr string, msgID uint32, msgType string, attempt int) {
	Debug("sending message",
		zap.String("remote_addr", remoteAddr),
		zap.Uint32("id", msgID),
		zap.String("type", msgType),
		zap.Int("attempt", attempt),
	)
}

// LogRetransmit logs a retransmit attempt after an ACK wait timed out.
func LogRetransmit(remoteAddr string, msgID uint32, attempt, maxAttempts int) {
	Warn("ACK wait timed out, retransmitting",
		zap.String("remote_addr", remoteAddr),
		zap.Uint32("id", msgID),
		zap.Int("attempt", attempt),
		zap.Int("max_attempts", maxAttempts),
	)
}

// LogAckTimeout logs the final retransmit attempt being exhausted.
func LogAckTimeout(remoteAddr string, msgID uint32, maxAttempts int) {
	Error("no ACK received after exhausting retransmit attempts",
		zap.String("remote_addr", remoteAddr),
		zap.Uint32("id", msgID),
		zap.Int("max_attempts", maxAttempts),
	)
}

// LogFragmentWait logs progress while collecting a fragmented response.
func LogFragmentWait(msgID uint32, blocksReceived, blocksExpected int) {
	Debug("collecting fragmented response",
		zap.Uint32("id", msgID),
		zap.Int("blocks_received", blocksReceived),
		zap.Int("blocks_expected", blocksExpected),
	)
}

// LogDroppedDatagram logs a datagram dropped because the inbound queue
// was at capacity.
func LogDroppedDatagram(msgID uint32, msgType string) {
	Warn("dropping message, inbound queue full",
		zap.Uint32("id", msgID),
		zap.String("type", msgType),
	)
}

// LogUnexpectedMessage logs a message received while waiting for
// something else (an ACK, or the next fragment) and discarded.
func LogUnexpectedMessage(context string, gotID uint32, gotType string) {
	Debug("discarding unexpected message",
		zap.String("context", context),
		zap.Uint32("id", gotID),
		zap.String("type", gotType),
	)
}

// LogRawBytes logs raw bytes, useful for debugging wire-format issues.
func LogRawBytes(label string, data []byte) {
	Debug(label,
		zap.Int("length", len(data)),
		zap.String("hex", hexDump(data)),
		zap.String("ascii", asciiDump(data)),
	)
}

func hexDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) > 256 {
		return hex.EncodeToString(data[:256]) + "..."
	}
	return hex.EncodeToString(data)
}

func asciiDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) > 256 {
		data = data[:256]
	}

	result := make([]byte, len(data))
	for i, b := range data {
		if b >= 32 && b <= 126 {
			result[i] = b
		} else {
			result[i] = '.'
		}
	}
	return string(result)
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
