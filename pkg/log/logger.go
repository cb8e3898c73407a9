package log

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a Logger writing structured JSON to w.
func NewZerologLogger(w io.Writer, level zerolog.Level) Logger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// NewConsoleLogger creates a Logger with zerolog's human-readable console
// output, for demos and local debugging.
func NewConsoleLogger(w io.Writer, level zerolog.Level) Logger {
	cw := zerolog.ConsoleWriter{Out: w}
	zl := zerolog.New(cw).Level(level).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// NewDisabledLogger creates a Logger that discards everything.
func NewDisabledLogger() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func (l *zerologLogger) Debug(msg string, fields ...interface{}) {
	emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...interface{}) {
	emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...interface{}) {
	emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...interface{}) {
	emit(l.zl.Error(), msg, fields)
}

func (l *zerologLogger) With(fields ...interface{}) Logger {
	ctx := l.zl.With()
	for k, v := range pairs(fields) {
		ctx = ctx.Interface(k, v)
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func emit(ev *zerolog.Event, msg string, fields []interface{}) {
	for k, v := range pairs(fields) {
		switch val := v.(type) {
		case zerolog.LogObjectMarshaler:
			ev = ev.Object(k, val)
		case error:
			ev = ev.AnErr(k, val)
		default:
			ev = ev.Interface(k, val)
		}
	}
	ev.Msg(msg)
}

// pairs converts alternating key-value fields into a map. A trailing key
// without a value is kept with a placeholder rather than dropped.
func pairs(fields []interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("!BADKEY(%v)", fields[i])
		}
		if i+1 < len(fields) {
			m[key] = fields[i+1]
		} else {
			m[key] = "!MISSING"
		}
	}
	return m
}
