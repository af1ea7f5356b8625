package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger.
//
// Log records go to stderr (console encoding) and to a rotated file under
// logDir (JSON encoding, 30 day retention).
func New(level string, logDir string) (*zap.Logger, error) {
	logLevel, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	fileConfig := zap.NewProductionEncoderConfig()
	fileConfig.TimeKey = "timestamp"
	fileConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "bot.log"),
		MaxSize:    10, // megabytes
		MaxAge:     30, // days
		MaxBackups: 30,
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.Lock(os.Stderr), logLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileConfig), fileSink, logLevel),
	)

	return zap.New(core, zap.AddCaller()), nil
}
