package log

import "sync"

// Entry is one captured log record.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

type entrySink struct {
	mu      sync.Mutex
	entries []Entry
}

// CaptureLogger records every log call for test assertions. Child loggers
// created with With share the same sink.
type CaptureLogger struct {
	base map[string]interface{}
	sink *entrySink
}

// NewCaptureLogger creates an empty CaptureLogger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{base: map[string]interface{}{}, sink: &entrySink{}}
}

// Entries returns a copy of everything logged so far.
func (c *CaptureLogger) Entries() []Entry {
	c.sink.mu.Lock()
	defer c.sink.mu.Unlock()
	out := make([]Entry, len(c.sink.entries))
	copy(out, c.sink.entries)
	return out
}

func (c *CaptureLogger) record(level, msg string, fields []interface{}) {
	merged := make(map[string]interface{}, len(c.base)+len(fields)/2)
	for k, v := range c.base {
		merged[k] = v
	}
	for k, v := range pairs(fields) {
		merged[k] = v
	}
	c.sink.mu.Lock()
	defer c.sink.mu.Unlock()
	c.sink.entries = append(c.sink.entries, Entry{Level: level, Message: msg, Fields: merged})
}

func (c *CaptureLogger) Debug(msg string, fields ...interface{}) { c.record("debug", msg, fields) }
func (c *CaptureLogger) Info(msg string, fields ...interface{})  { c.record("info", msg, fields) }
func (c *CaptureLogger) Warn(msg string, fields ...interface{})  { c.record("warn", msg, fields) }
func (c *CaptureLogger) Error(msg string, fields ...interface{}) { c.record("error", msg, fields) }

// With returns a child logger sharing the same entry sink.
func (c *CaptureLogger) With(fields ...interface{}) Logger {
	base := make(map[string]interface{}, len(c.base)+len(fields)/2)
	for k, v := range c.base {
		base[k] = v
	}
	for k, v := range pairs(fields) {
		base[k] = v
	}
	return &CaptureLogger{base: base, sink: c.sink}
}
