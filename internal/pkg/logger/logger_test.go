package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorLoggerEmitsErrorf(t *testing.T) {
	var buf bytes.Buffer
	out := ErrorLogger.Out
	defer ErrorLogger.SetOutput(out)
	ErrorLogger.SetOutput(&buf)

	ErrorLogger.Errorf("cache read failed: %v", "boom")

	assert.Contains(t, buf.String(), "cache read failed: boom")
}

// ErrorLogger is pinned to ErrorLevel, so anything logged below that level
// never reaches the output. Error paths must log with Errorf, not Printf.
func TestErrorLoggerDropsInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	out := ErrorLogger.Out
	defer ErrorLogger.SetOutput(out)
	ErrorLogger.SetOutput(&buf)

	ErrorLogger.Printf("cache read failed: %v", "boom")

	assert.Empty(t, buf.String())
}

func TestInfoLoggerEmitsPrintf(t *testing.T) {
	var buf bytes.Buffer
	out := InfoLogger.Out
	defer InfoLogger.SetOutput(out)
	InfoLogger.SetOutput(&buf)

	InfoLogger.Printf("auto-completed %d finished bookings", 3)

	assert.Contains(t, buf.String(), "auto-completed 3 finished bookings")
}
