// Package logger wraps zap with the two output modes the services run in and
// carries the request id from the context onto every *Ctx entry.
package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ProductionMode  = "production"
	DevelopmentMode = "development"
)

type Logger struct {
	Logger *zap.Logger
}

type options struct {
	level   zapcore.Level
	service string
}

type Option func(*options)

// WithLevel sets the minimum level by name (debug, info, warn, error).
// Empty or unknown names keep the mode's default.
func WithLevel(name string) Option {
	return func(o *options) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if lvl, err := zapcore.ParseLevel(name); err == nil {
			o.level = lvl
		}
	}
}

// WithService stamps every entry with a service field.
func WithService(name string) Option {
	return func(o *options) { o.service = name }
}

// New builds a JSON logger with ISO8601 times in production mode and a
// colored console logger otherwise.
func New(mode string, opts ...Option) *Logger {
	o := options{level: zapcore.DebugLevel}
	if mode == ProductionMode {
		o.level = zapcore.InfoLevel
	}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg zap.Config
	if mode == ProductionMode {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(o.level)
	if o.service != "" {
		cfg.InitialFields = map[string]interface{}{"service": o.service}
	}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return &Logger{Logger: zl}
}

// NewNop discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

type ctxKey struct{}

// ContextWithRequestID returns a copy of ctx carrying id for the *Ctx methods.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by ContextWithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *Logger) fromContext(ctx context.Context) *zap.Logger {
	if id := RequestID(ctx); id != "" {
		return l.Logger.With(zap.String("request_id", id))
	}
	return l.Logger
}

var global *Logger

func SetGlobalLogger(l *Logger) {
	global = l
}

// GetGlobalLogger never returns nil; before SetGlobalLogger it is a no-op logger.
func GetGlobalLogger() *Logger {
	if global == nil {
		return NewNop()
	}
	return global
}

func (l *Logger) Sync() {
	_ = l.Logger.Sync()
}

func (l *Logger) Infof(template string, args ...interface{}) {
	l.Logger.Sugar().Infof(template, args...)
}

func (l *Logger) Warnf(template string, args ...interface{}) {
	l.Logger.Sugar().Warnf(template, args...)
}

func (l *Logger) Errorf(template string, args ...interface{}) {
	l.Logger.Sugar().Errorf(template, args...)
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.fromContext(ctx).Info(msg, fields...)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.fromContext(ctx).Warn(msg, fields...)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.fromContext(ctx).Error(msg, fields...)
}
