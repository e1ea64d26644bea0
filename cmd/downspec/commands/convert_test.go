package commands

import (
	"testing"
)

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := SetupConvertFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Output != "" {
			t.Errorf("expected Output to be empty by default, got '%s'", flags.Output)
		}
		if flags.Stdout {
			t.Error("expected Stdout to be false by default")
		}
		if flags.Strict {
			t.Error("expected Strict to be false by default")
		}
		if flags.NoWarnings {
			t.Error("expected NoWarnings to be false by default")
		}
		if flags.Quiet {
			t.Error("expected Quiet to be false by default")
		}
		if flags.JSON {
			t.Error("expected JSON to be false by default")
		}
		if flags.YAML {
			t.Error("expected YAML to be false by default")
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "output.yaml", "--strict", "--no-warnings", "-q", "input.yaml"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.Output != "output.yaml" {
			t.Errorf("expected Output 'output.yaml', got '%s'", flags.Output)
		}
		if !flags.Strict {
			t.Error("expected Strict to be true")
		}
		if !flags.NoWarnings {
			t.Error("expected NoWarnings to be true")
		}
		if !flags.Quiet {
			t.Error("expected Quiet to be true")
		}
		if fs.Arg(0) != "input.yaml" {
			t.Errorf("expected file arg 'input.yaml', got '%s'", fs.Arg(0))
		}
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupConvertFlags()
		args := []string{"--output", "out.yaml", "--quiet", "in.yaml"}
		if err := fs2.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags2.Output != "out.yaml" {
			t.Errorf("expected Output 'out.yaml', got '%s'", flags2.Output)
		}
		if !flags2.Quiet {
			t.Error("expected Quiet to be true")
		}
	})

	t.Run("format overrides", func(t *testing.T) {
		fs3, flags3 := SetupConvertFlags()
		args := []string{"--json", "--stdout", "in.yaml"}
		if err := fs3.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if !flags3.JSON {
			t.Error("expected JSON to be true")
		}
		if flags3.YAML {
			t.Error("expected YAML to be false")
		}
		if !flags3.Stdout {
			t.Error("expected Stdout to be true")
		}
	})
}

func TestHandleConvert_NoArgs(t *testing.T) {
	err := HandleConvert([]string{})
	if err == nil {
		t.Error("expected error when no file provided")
	}
}

func TestHandleConvert_Help(t *testing.T) {
	err := HandleConvert([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleConvert_ConflictingFormats(t *testing.T) {
	err := HandleConvert([]string{"--json", "--yaml", "input.yaml"})
	if err == nil {
		t.Error("expected error when both --json and --yaml are set")
	}
}

func TestHandleConvert_TooManyArgs(t *testing.T) {
	err := HandleConvert([]string{"a.yaml", "b.yaml"})
	if err == nil {
		t.Error("expected error when more than one file provided")
	}
}
