package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput redirects the logger to a buffer for one test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := captureOutput(t)
	SetVerbose(true)

	Debug("ingested %s (%d pages)", "ISO 9001.pdf", 42)

	assert.Equal(t, "[DEBUG] ingested ISO 9001.pdf (42 pages)\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t)
	SetVerbose(false)

	Debug("querying %s with %d standards", "gpt-4o", 3)

	assert.Zero(t, buf.Len(), "debug output suppressed without --verbose")
}

func TestSection(t *testing.T) {
	buf := captureOutput(t)
	SetVerbose(true)

	Section("Inbox sweep")

	assert.Equal(t, "\n=== Inbox sweep ===\n", buf.String())
}

func TestInfo(t *testing.T) {
	buf := captureOutput(t)
	SetVerbose(true)

	Info("watching inbox %s", "/tmp/standards")

	assert.Equal(t, "[INFO] watching inbox /tmp/standards\n", buf.String())
}

func TestWarn(t *testing.T) {
	buf := captureOutput(t)
	SetVerbose(true)

	Warn("inbox watcher stopped: %v", os.ErrClosed)

	assert.Equal(t, "[WARN] inbox watcher stopped: file already closed\n", buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	captureOutput(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(i int) {
			SetVerbose(true)
			Debug("ingest worker %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
