package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetDebugLogger(t *testing.T) func() {
	t.Helper()

	globalDebugLogger.mu.Lock()
	prevFile := globalDebugLogger.file
	prevBuffer := append([]byte(nil), globalDebugLogger.buffer...)
	prevDiscard := globalDebugLogger.discard
	globalDebugLogger.file = nil
	globalDebugLogger.buffer = nil
	globalDebugLogger.discard = false
	globalDebugLogger.mu.Unlock()

	return func() {
		globalDebugLogger.mu.Lock()
		if globalDebugLogger.file != nil {
			_ = globalDebugLogger.file.Close()
		}
		globalDebugLogger.file = prevFile
		globalDebugLogger.buffer = prevBuffer
		globalDebugLogger.discard = prevDiscard
		globalDebugLogger.mu.Unlock()
	}
}

func TestSetFileFailureDiscardsLogs(t *testing.T) {
	restore := resetDebugLogger(t)
	t.Cleanup(restore)

	unwritableDir := t.TempDir()
	if err := os.Chmod(unwritableDir, 0o500); err != nil { //nolint:gosec
		t.Fatalf("set directory permissions: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(unwritableDir, 0o700) //nolint:gosec
	})

	logPath := filepath.Join(unwritableDir, "debug.log")
	if err := SetFile(logPath); err == nil {
		t.Fatalf("expected SetFile to fail for %q", logPath)
	}

	globalDebugLogger.mu.Lock()
	discard := globalDebugLogger.discard
	bufferLen := len(globalDebugLogger.buffer)
	globalDebugLogger.mu.Unlock()

	if !discard {
		t.Fatalf("expected discard to be enabled after SetFile failure")
	}
	if bufferLen != 0 {
		t.Fatalf("expected buffer to be cleared after SetFile failure")
	}

	Printf("should be discarded")

	globalDebugLogger.mu.Lock()
	bufferLen = len(globalDebugLogger.buffer)
	globalDebugLogger.mu.Unlock()

	if bufferLen != 0 {
		t.Fatalf("expected buffer to remain empty after logging")
	}
}

func TestSetFileFlushesBufferedLines(t *testing.T) {
	restore := resetDebugLogger(t)
	t.Cleanup(restore)

	Logf("scanner")("scanned %d entries", 3)

	logPath := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(logPath); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	Printf("after %s", "open")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath) //nolint:gosec
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "[scanner] scanned 3 entries") {
		t.Fatalf("expected buffered component line, got %q", out)
	}
	if !strings.Contains(out, "after open") {
		t.Fatalf("expected post-open line, got %q", out)
	}
}

func TestBufferIsBounded(t *testing.T) {
	restore := resetDebugLogger(t)
	t.Cleanup(restore)

	line := []byte(strings.Repeat("x", 1023) + "\n")
	for range 400 {
		_, _ = globalDebugLogger.Write(line)
	}

	globalDebugLogger.mu.Lock()
	n := len(globalDebugLogger.buffer)
	globalDebugLogger.mu.Unlock()

	if n > maxBuffered {
		t.Fatalf("buffer grew to %d, want <= %d", n, maxBuffered)
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	restore := resetDebugLogger(t)
	t.Cleanup(restore)

	Println("buffered")
	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	Println("dropped")

	globalDebugLogger.mu.Lock()
	n := len(globalDebugLogger.buffer)
	globalDebugLogger.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", n)
	}
}
