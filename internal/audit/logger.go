package audit

import (
	"go.uber.org/zap"
)

// Logger writes audit events as structured log lines.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) {
	fields := []zap.Field{
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
		zap.String("entity_id", ev.EntityID),
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}
	l.log.Info("audit", fields...)
}
