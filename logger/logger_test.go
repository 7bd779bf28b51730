package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func newBufLogger() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := NewStdLogger()
	l.SetOutput(buf)
	return l, buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufLogger()
	l.SetLevel(LogLevelWarn)

	l.Info("should be hidden")
	l.Debug("should be hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below Warn, got: %s", buf.String())
	}

	l.Warn("visible warning")
	if !strings.Contains(buf.String(), "visible warning") {
		t.Errorf("Expected warning in output, got: %s", buf.String())
	}

	l.Error("visible error")
	if !strings.Contains(buf.String(), "visible error") {
		t.Errorf("Expected error in output, got: %s", buf.String())
	}
}

func TestSchemaEvent(t *testing.T) {
	l, buf := newBufLogger()
	l.SetLevel(LogLevelInfo)

	l.Schema("mapping.event", 3*time.Millisecond, 5)
	out := buf.String()
	if !strings.Contains(out, "SCHEMA") || !strings.Contains(out, "mapping.event") {
		t.Errorf("Unexpected schema event output: %s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	l, buf := newBufLogger()
	l.SetFormat(LogFormatJSON)
	l = l.WithFields(map[string]any{"entity": "foo"})

	l.Info("resolved %d properties", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["level"] != "INFO" {
		t.Errorf("Expected level INFO, got %v", entry["level"])
	}
	if entry["msg"] != "resolved 3 properties" {
		t.Errorf("Unexpected msg: %v", entry["msg"])
	}
	if entry["entity"] != "foo" {
		t.Errorf("Expected entity field, got %v", entry["entity"])
	}
}

func TestJSONSchemaEventFields(t *testing.T) {
	l, buf := newBufLogger()
	l.SetFormat(LogFormatJSON)

	l.Schema("foo", time.Millisecond, 2)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	if entry["entity"] != "foo" {
		t.Errorf("Expected entity foo, got %v", entry["entity"])
	}
	if entry["properties"] != float64(2) {
		t.Errorf("Expected 2 properties, got %v", entry["properties"])
	}
}

func TestDumpOnlyAtDebug(t *testing.T) {
	l, buf := newBufLogger()
	l.SetLevel(LogLevelInfo)

	l.Dump("schema", []string{"a", "b"})
	if buf.Len() != 0 {
		t.Errorf("Expected no dump below Debug, got: %s", buf.String())
	}

	l.SetLevel(LogLevelDebug)
	l.Dump("schema", []string{"a", "b"})
	out := buf.String()
	if !strings.Contains(out, "DUMP") || !strings.Contains(out, "schema") {
		t.Errorf("Unexpected dump output: %s", out)
	}
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	l, buf := newBufLogger()
	child := l.WithFields(map[string]any{"k": "v"})

	l.Info("parent")
	if strings.Contains(buf.String(), "fields") {
		t.Errorf("Parent logger must not carry child fields: %s", buf.String())
	}

	buf.Reset()
	child.Info("child")
	if !strings.Contains(buf.String(), "k") {
		t.Errorf("Child logger must carry its fields: %s", buf.String())
	}
}
