package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init wires the global logger. Debug logging is opt-in via MEALTRACK_DEBUG
// so normal command output stays clean.
func Init() {
	if os.Getenv("MEALTRACK_DEBUG") == "" {
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log = l
}

// Close flushes buffered log entries.
func Close() {
	_ = log.Sync()
}

func Debug(msg string, fields ...zapcore.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zapcore.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	log.Error(msg, fields...)
}
