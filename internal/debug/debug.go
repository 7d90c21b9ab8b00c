// Package debug provides the process-wide logger.
//
// Output goes to stderr through a zerolog console writer. Debug-level
// messages are only emitted after SetDebug(true); warnings and errors are
// always emitted.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	output  io.Writer = os.Stderr
	base              = newLogger(os.Stderr, false, false)
)

func newLogger(w io.Writer, debugOn, plain bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debugOn {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    plain,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// rebuild must be called with mu held for writing.
func rebuild() {
	base = newLogger(output, enabled, noColor)
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects log output. Tests use it to capture messages.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Logger returns a logger tagged with the component name.
func Logger(component string) zerolog.Logger {
	l := current()
	return l.With().Str("component", component).Logger()
}

// Debug logs a formatted debug message
func Debug(format string, args ...interface{}) {
	l := current()
	l.Debug().Msg(fmt.Sprintf(format, args...))
}

// DebugSection logs a section header
func DebugSection(section string) {
	l := current()
	l.Debug().Msg("=== " + section + " ===")
}

// DebugValue logs a key/value pair
func DebugValue(key string, value interface{}) {
	l := current()
	l.Debug().Interface("value", value).Msg(key)
}

// DebugJSON logs structured data as a JSON field
func DebugJSON(key string, v interface{}) {
	l := current()
	l.Debug().Interface(key, v).Msg(key)
}
