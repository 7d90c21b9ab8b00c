package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, debugOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	SetDebug(debugOn)
	t.Cleanup(func() {
		SetDebug(false)
		SetNoColor(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	assert.False(t, IsEnabled())

	SetDebug(true)
	assert.True(t, IsEnabled())

	SetDebug(false)
	assert.False(t, IsEnabled())
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t, true)

	Debug("test message %s", "arg")

	output := buf.String()
	assert.Contains(t, output, "DBG")
	assert.Contains(t, output, "test message arg")
}

func TestDebugDisabled(t *testing.T) {
	buf := capture(t, false)

	Debug("this should not appear")
	DebugSection("hidden")
	DebugValue("hidden", 1)

	assert.Empty(t, buf.String())
}

func TestDebugSectionAndValue(t *testing.T) {
	buf := capture(t, true)

	DebugSection("[app] Create")
	DebugValue("[app] Project", "my-app")
	DebugJSON("folders", []string{"components", "utils"})

	output := buf.String()
	assert.Contains(t, output, "=== [app] Create ===")
	assert.Contains(t, output, "[app] Project")
	assert.Contains(t, output, "value=my-app")
	assert.Contains(t, output, "components")
}

func TestLoggerWarnAlwaysEmitted(t *testing.T) {
	buf := capture(t, false)

	l := Logger("inject")
	l.Warn().Str("file", "vite.config.ts").Msg("anchor not found")

	output := buf.String()
	assert.Contains(t, output, "WRN")
	assert.Contains(t, output, "anchor not found")
	assert.Contains(t, output, "component=inject")
	assert.Contains(t, output, "file=vite.config.ts")
}
