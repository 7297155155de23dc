package logging

import "time"

// Level filters which entries a logger emits.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel maps a level name to its Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	}
	return InfoLevel
}

// Field is one structured key-value pair.
type Field struct {
	Key   string
	Value any
}

// Common field constructors.

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Err(err error) Field { return Field{Key: "error", Value: err.Error()} }

func Component(name string) Field { return Field{Key: "component", Value: name} }

func RequestID(id string) Field { return Field{Key: "request_id", Value: id} }

func Stage(stage string) Field { return Field{Key: "stage", Value: stage} }

func Latency(d time.Duration) Field { return Field{Key: "latency_ms", Value: d.Milliseconds()} }

func Status(code int) Field { return Field{Key: "status", Value: code} }

func Path(p string) Field { return Field{Key: "path", Value: p} }

func Method(m string) Field { return Field{Key: "method", Value: m} }
