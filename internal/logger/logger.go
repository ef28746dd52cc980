// internal/logger/logger.go
package logger

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zap.Logger for the terminal dashboard. The TUI owns stdout,
// so entries go to a rotating JSON file and to an in-memory ring read by the UI.
type Logger struct {
	*zap.Logger
	recent *Recent
	config *Config
}

// New creates a file-backed logger.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.LogFile == "" {
		return nil, errors.New("log file path is empty")
	}

	logRotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if cfg.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level := zapcore.InfoLevel
	if cfg.Development {
		level = zapcore.DebugLevel
	}

	recent := NewRecent(cfg.RecentSize)
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logRotator), level),
		recent.Core(zapcore.InfoLevel),
	)

	return &Logger{
		Logger: zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		),
		recent: recent,
		config: cfg,
	}, nil
}

// Nop returns a logger that discards everything but still records recent entries.
func Nop() *Logger {
	recent := NewRecent(DefaultConfig().RecentSize)
	return &Logger{
		Logger: zap.New(recent.Core(zapcore.InfoLevel)),
		recent: recent,
		config: DefaultConfig(),
	}
}

// WithComponent adds the component name to every entry
func (l *Logger) WithComponent(component string) *zap.Logger {
	return l.With(zap.String("component", component))
}

// Recent returns the in-memory ring of recent entries.
func (l *Logger) Recent() *Recent {
	return l.recent
}

// Sync flushes the file core, ignoring the errors terminals return for stdout/stderr.
func (l *Logger) Sync() error {
	err := l.Logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
