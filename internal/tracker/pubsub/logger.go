// Package pubsub wires watermill onto Redis streams and zap.
package pubsub

import (
	"sort"

	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

// zapLogger adapts zap to watermill. Trace is logged at debug level.
type zapLogger struct {
	logger *zap.Logger
}

// NewLogger returns a watermill logger writing to logger.
func NewLogger(logger *zap.Logger) watermill.LoggerAdapter {
	return &zapLogger{logger: logger.Named("watermill")}
}

func (l *zapLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.logger.Error(msg, append(zapFields(fields), zap.Error(err))...)
}

func (l *zapLogger) Info(msg string, fields watermill.LogFields) {
	l.logger.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Debug(msg string, fields watermill.LogFields) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Trace(msg string, fields watermill.LogFields) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapLogger{logger: l.logger.With(zapFields(fields)...)}
}

func zapFields(fields watermill.LogFields) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]zap.Field, 0, len(keys)+1)
	for _, k := range keys {
		res = append(res, zap.Any(k, fields[k]))
	}
	return res
}
