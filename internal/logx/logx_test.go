package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/pslog"
)

func TestWithDocumentAddsPath(t *testing.T) {
	capture := &logCapture{}
	log := WithDocument(Structured(capture, false), "/notes/todo.md")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["doc"] != "/notes/todo.md" {
		t.Fatalf("expected doc field, got %+v", entry)
	}
}

func TestWithDocumentMarksScratch(t *testing.T) {
	capture := &logCapture{}
	log := WithDocument(Structured(capture, false), "")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["doc"] != "(scratch)" {
		t.Fatalf("expected scratch doc field, got %+v", entry)
	}
}

func TestStructuredRespectsDebugFlag(t *testing.T) {
	capture := &logCapture{}
	Structured(capture, false).Debug("hidden")
	if capture.buf.Len() != 0 {
		t.Fatalf("expected debug entry to be filtered, got %q", capture.buf.String())
	}

	Structured(capture, true).Debug("shown", "k", "v")
	entry := capture.firstEntry(t)
	if entry["k"] != "v" {
		t.Fatalf("expected debug entry, got %+v", entry)
	}
}

func TestCtxReturnsBoundLogger(t *testing.T) {
	capture := &logCapture{}
	ctx := pslog.ContextWithLogger(context.Background(), Structured(capture, false))
	Ctx(ctx).Info("bound", "n", 1)

	entry := capture.firstEntry(t)
	if entry["n"] != float64(1) {
		t.Fatalf("expected n field, got %+v", entry)
	}
}

func TestOpenFileAppendsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "markpad.log")
	log, closer, err := OpenFile(path, false)
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	log.Info("written", "x", "y")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	capture := &logCapture{}
	capture.buf.Write(data)
	if entry := capture.firstEntry(t); entry["x"] != "y" {
		t.Fatalf("expected x field, got %+v", entry)
	}
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
