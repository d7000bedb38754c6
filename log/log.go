package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	pos "github.com/pinpt/go-filterset/os"
)

// Logger is the fundamental interface for all log operations. Log creates a
// log event from keyvals, a variadic sequence of alternating keys and values.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	Log(keyvals ...interface{}) error
}

// LoggerCloser returns a logger which implements a Close interface
type LoggerCloser interface {
	Logger
	Close() error
}

// ErrMissingValue is appended to keyvals slices with odd length to substitute
// the missing value.
var ErrMissingValue = errors.New("(MISSING)")

const (
	pkgKey = "pkg"
	msgKey = "msg"
	tsKey  = "ts"
)

var (
	levelKey   = fmt.Sprintf("%v", level.Key())
	debugLevel = level.DebugValue().String()
	warnLevel  = level.WarnValue().String()
	errLevel   = level.ErrorValue().String()
	infoLevel  = level.InfoValue().String()
)

// With returns a new contextual logger with keyvals prepended to those passed
// to calls to Log.
func With(logger Logger, keyvals ...interface{}) Logger {
	return log.With(logger, keyvals...)
}

func withMsg(msg string, kv []interface{}) []interface{} {
	return append([]interface{}{msgKey, msg}, kv...)
}

// Info log helper
func Info(logger Logger, msg string, kv ...interface{}) error {
	return level.Info(logger).Log(withMsg(msg, kv)...)
}

// Debug log helper
func Debug(logger Logger, msg string, kv ...interface{}) error {
	return level.Debug(logger).Log(withMsg(msg, kv)...)
}

// Warn log helper
func Warn(logger Logger, msg string, kv ...interface{}) error {
	return level.Warn(logger).Log(withMsg(msg, kv)...)
}

// Error log helper
func Error(logger Logger, msg string, kv ...interface{}) error {
	return level.Error(logger).Log(withMsg(msg, kv)...)
}

// Fatal log helper. Logs at error level then exits through the registered exit hooks
func Fatal(logger Logger, msg string, kv ...interface{}) {
	level.Error(logger).Log(withMsg(msg, kv)...)
	os.Stderr.Sync()
	os.Stdout.Sync()
	pos.Exit(1)
}

// OutputFormat is the logging output format
type OutputFormat byte

const (
	// JSONLogFormat will output JSON formatted logs
	JSONLogFormat OutputFormat = 1 << iota
	// LogFmtLogFormat will output logfmt formatted logs
	LogFmtLogFormat
	// ConsoleLogFormat will output logfmt colored logs to console
	ConsoleLogFormat
)

// ColorTheme is the logging color theme
type ColorTheme byte

const (
	// DarkLogColorTheme is the default color theme for console logging (if enabled)
	DarkLogColorTheme ColorTheme = 1 << iota
	// LightLogColorTheme is for consoles that are light (vs dark)
	LightLogColorTheme
	// NoColorTheme will turn off console colors
	NoColorTheme
)

// Level is the minimum logging level
type Level byte

const (
	// InfoLevel will only log level and above (default)
	InfoLevel Level = 1 << iota
	// DebugLevel will log all messages
	DebugLevel
	// WarnLevel will only log warning and above
	WarnLevel
	// ErrorLevel will only log error and above
	ErrorLevel
	// NoneLevel will no log at all
	NoneLevel
)

// LevelFromString will return a LogLevel const from a named string
func LevelFromString(level string) Level {
	switch level {
	case "info", "INFO", "":
		return InfoLevel
	case "debug", "DEBUG":
		return DebugLevel
	case "warn", "WARN", "warning", "WARNING":
		return WarnLevel
	case "error", "ERROR", "fatal", "FATAL":
		return ErrorLevel
	}
	return NoneLevel
}

type logcloser struct {
	w io.WriteCloser
	l Logger
	o sync.Once
}

// Log will dispatch the log to the next logger
func (l *logcloser) Log(kv ...interface{}) error {
	return l.l.Log(kv...)
}

// Close will close the underlying writer
func (l *logcloser) Close() error {
	l.o.Do(func() {
		// don't close the main process stdout/stderr
		if l.w == os.Stdout || l.w == os.Stderr {
			return
		}
		l.w.Close()
	})
	return nil
}

type nocloselog struct {
	l Logger
}

// Log will dispatch the log to the next logger
func (l *nocloselog) Log(kv ...interface{}) error {
	return l.l.Log(kv...)
}

// Close is a no-op
func (l *nocloselog) Close() error {
	return nil
}

// WithLogOptions is a callback for customizing the logger event further before returning
type WithLogOptions func(logger Logger) Logger

// WithDefaultTimestampLogOption will add the timestamp in UTC to the ts key
func WithDefaultTimestampLogOption() WithLogOptions {
	return func(logger Logger) Logger {
		return log.With(logger, tsKey, log.DefaultTimestampUTC)
	}
}

// NewNoOpTestLogger is a test logger that only logs errors to stderr
func NewNoOpTestLogger() LoggerCloser {
	return &nocloselog{level.NewFilter(log.NewLogfmtLogger(os.Stderr), level.AllowError())}
}

// dedupelogger will de-dupe the keys (LIFO) excluding msg and level
// such that we only emit one unique key per log message, sorted by key
type dedupelogger struct {
	next Logger
}

func (l *dedupelogger) Log(keyvals ...interface{}) error {
	newvals := make([]interface{}, 0, len(keyvals))
	kvs := make(map[string]interface{})
	for i := 0; i < len(keyvals); i += 2 {
		k := keyvals[i]
		var v interface{} = ErrMissingValue
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		if k == msgKey || k == levelKey {
			newvals = append(newvals, k, v)
			continue
		}
		kvs[fmt.Sprintf("%v", k)] = v
	}
	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		newvals = append(newvals, k, kvs[k])
	}
	return l.next.Log(newvals...)
}

// track the depth from which the call stack should track the call site
const callStackDepth = 7

// NewLogger will create a new logger
func NewLogger(writer io.Writer, format OutputFormat, theme ColorTheme, minLevel Level, pkg string, opts ...WithLogOptions) LoggerCloser {
	// short circuit it all if log level is none
	if minLevel == NoneLevel {
		return &nocloselog{log.NewNopLogger()}
	}

	var logger Logger
	switch format {
	case JSONLogFormat:
		logger = log.NewJSONLogger(writer)
	case LogFmtLogFormat:
		logger = log.NewLogfmtLogger(writer)
	default:
		logger = newConsoleLogger(writer, pkg, theme)
	}

	// serialize writes, the console and file writers are not goroutine safe
	logger = log.NewSyncLogger(logger)

	// turn off caller for test package
	allowCaller := pkg != "test"

	switch minLevel {
	case DebugLevel:
		logger = level.NewFilter(logger, level.AllowDebug())
		if allowCaller {
			logger = log.With(logger, "caller", log.Caller(callStackDepth))
		}
	case InfoLevel:
		logger = level.NewFilter(logger, level.AllowInfo())
	case WarnLevel:
		logger = level.NewFilter(logger, level.AllowWarn())
	case ErrorLevel:
		logger = level.NewFilter(logger, level.AllowError())
		if allowCaller {
			logger = log.With(logger, "caller", log.Caller(callStackDepth))
		}
	}

	// allow any functions to transform the logger further before we return
	for _, o := range opts {
		logger = o(logger)
	}

	logger = log.With(logger, pkgKey, pkg)

	// make sure that all message have a level
	logger = level.NewInjector(logger, level.InfoValue())

	// make sure we de-dupe log keys
	logger = &dedupelogger{logger}

	// if the writer implements the io.WriteCloser we wrap the
	// return value in a write closer interface
	if w, ok := writer.(io.WriteCloser); ok {
		lc := &logcloser{w: w, l: logger}
		pos.OnExit(func(_ int) {
			lc.Close()
		})
		return lc
	}

	// wrap in a type that suppresses the call to Close
	return &nocloselog{logger}
}
