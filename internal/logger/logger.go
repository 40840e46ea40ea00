package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger はbuildutilsのログインターフェース
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	WithFields(keysAndValues ...interface{}) Logger
}

// zapLogger はzapを使用したLogger実装
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Config はロガーの設定
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// Option はロガーの設定オプション
type Option func(*Config)

// WithLevel はログレベルを設定するオプション
func WithLevel(level string) Option {
	return func(c *Config) {
		c.Level = level
	}
}

// WithFormat はログフォーマットを設定するオプション
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithOutput は出力先を設定するオプション
// タスク一覧などの標準出力と混ざらないよう、デフォルトはstderr
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// New は新しいロガーを作成する
func New(opts ...Option) (Logger, error) {
	config := &Config{
		Level:  "info",
		Format: "text",
		Output: os.Stderr,
	}

	for _, opt := range opts {
		opt(config)
	}

	level, err := parseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoder, err := newEncoder(config.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(config.Output), level)
	return newLoggerWithCore(core), nil
}

// Nop は何も出力しないロガーを返す
func Nop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch format {
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig), nil
	case "text":
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

// parseLevel は文字列のログレベルをzapcore.Levelに変換する
func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown level: %s", level)
	}
}

// Debug はデバッグレベルのログを出力する
func (l *zapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, SanitizeArgs(keysAndValues...)...)
}

// Info は情報レベルのログを出力する
func (l *zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, SanitizeArgs(keysAndValues...)...)
}

// Warn は警告レベルのログを出力する
func (l *zapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, SanitizeArgs(keysAndValues...)...)
}

// Error はエラーレベルのログを出力する
func (l *zapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, SanitizeArgs(keysAndValues...)...)
}

// WithFields はフィールドを追加した新しいロガーを返す
func (l *zapLogger) WithFields(keysAndValues ...interface{}) Logger {
	return &zapLogger{
		sugar: l.sugar.With(SanitizeArgs(keysAndValues...)...),
	}
}

// newLoggerWithCore はカスタムコアでロガーを作成する
func newLoggerWithCore(core zapcore.Core) Logger {
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &zapLogger{sugar: logger.Sugar()}
}
