package log

import (
	"go.uber.org/zap"
)

// Fields is a set of key/value pairs attached to a logger
type Fields map[string]interface{}

// Logger carries a zap sugared logger plus accumulated fields
type Logger struct {
	logger *zap.SugaredLogger
	fields []interface{}
}

var zapSugaredLogger *zap.SugaredLogger

func init() {
	zapLogger, _ := zap.NewProduction(zap.AddCallerSkip(1))
	zapSugaredLogger = zapLogger.Sugar()
}

// Log returns a logger without fields
func Log() Logger {
	return Logger{
		logger: zapSugaredLogger,
		fields: []interface{}{},
	}
}

// WithField returns a logger with one more key/value pair attached
func (l Logger) WithField(key string, value interface{}) Logger {
	l.fields = append(l.fields, key, value)
	return l
}

// WithFields returns a logger with every given pair attached
func (l Logger) WithFields(kvs Fields) Logger {
	for k, v := range kvs {
		l = l.WithField(k, v)
	}
	return l
}

func (l Logger) Debug(args ...interface{}) {
	l.logger.With(l.fields...).Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.logger.With(l.fields...).Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.logger.With(l.fields...).Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.logger.With(l.fields...).Error(args...)
}

func (l Logger) Panic(args ...interface{}) {
	l.logger.With(l.fields...).Panic(args...)
}
