package localeurl

import "github.com/goliatone/go-logger/glog"

// Logger is the minimal logging contract the package needs. Messages take
// alternating key/value arguments.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// NoopLogger returns a logger that discards everything. It is the default
// when no logger is configured.
func NoopLogger() Logger {
	return noopLogger{}
}

// NewGlogLogger builds a go-logger backed Logger with console output. The
// name becomes the child logger channel.
func NewGlogLogger(name string, level string) Logger {
	options := []glog.Option{glog.WithLoggerTypeConsole()}
	if normalized := normalizeLogLevel(level); normalized != "" {
		options = append(options, glog.WithLevel(normalized))
	}

	root := glog.NewLogger(options...)
	if name == "" {
		return &glogAdapter{inner: root}
	}
	return &glogAdapter{inner: root.GetLogger(name)}
}

type glogAdapter struct {
	inner glog.Logger
}

func (l *glogAdapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *glogAdapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *glogAdapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *glogAdapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

func normalizeLogLevel(level string) string {
	switch level {
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
