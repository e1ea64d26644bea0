package cliutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Converted %s -> %s\n", "api.yaml", "api-swagger.yaml")
	want := "Converted api.yaml -> api-swagger.yaml\n"
	if got := buf.String(); got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	if got := buf.String(); got != "Simple message" {
		t.Errorf("Writef() = %q, want %q", got, "Simple message")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (e errorWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	// Writef must handle write errors gracefully by logging to stderr
	// rather than panicking.
	var ew errorWriter
	Writef(ew, "This will fail")
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"-", "<stdin>"},
		{"api.yaml", "api.yaml"},
		{"/abs/path/spec.json", "/abs/path/spec.json"},
	}

	for _, tt := range tests {
		if got := DisplayPath(tt.path); got != tt.want {
			t.Errorf("DisplayPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
