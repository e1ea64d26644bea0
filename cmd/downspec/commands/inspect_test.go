package commands

import (
	"testing"
)

func TestHandleInspect_NoArgs(t *testing.T) {
	err := HandleInspect([]string{})
	if err == nil {
		t.Error("expected error when no file provided")
	}
}

func TestHandleInspect_Help(t *testing.T) {
	err := HandleInspect([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleInspect_TooManyArgs(t *testing.T) {
	err := HandleInspect([]string{"a.yaml", "b.yaml"})
	if err == nil {
		t.Error("expected error when more than one file provided")
	}
}
