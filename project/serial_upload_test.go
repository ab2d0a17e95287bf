package project

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteProgramLinesUsesCRLF(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteProgramLines(&buf, "MODULE M\nENDMODULE\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "MODULE M\r\nENDMODULE\r\n" {
		t.Fatalf("unexpected framing %q", buf.String())
	}
	if n != buf.Len() {
		t.Fatalf("reported %d bytes, wrote %d", n, buf.Len())
	}
}

type failingWriter struct{ budget int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errors.New("line dropped")
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestWriteProgramLinesStopsOnError(t *testing.T) {
	n, err := WriteProgramLines(&failingWriter{budget: 12}, "0123456789\nabcdef\nxyz")
	if err == nil {
		t.Fatalf("expected write error")
	}
	if n != 12 {
		t.Fatalf("expected 12 bytes before failure, got %d", n)
	}
}

func TestUploadProgramMissingPort(t *testing.T) {
	port := filepath.Join(t.TempDir(), "ttyNOPE")
	err := UploadProgram(SerialConfig{Name: port, Baud: 9600}, "MODULE M\nENDMODULE\n")
	if err == nil || !strings.Contains(err.Error(), NOT_FOUND_SERIAL_ERROR) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
