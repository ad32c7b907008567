package cmd

import (
	"errors"
	"testing"

	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

func TestTargetError(t *testing.T) {
	err := &TargetError{Target: "bad host", Err: sharedErrors.ErrInvalidTarget}
	want := `invalid target "bad host": invalid target`
	if err.Error() != want {
		t.Fatalf("expected %s, got %s", want, err.Error())
	}
	if !errors.Is(err, sharedErrors.ErrInvalidTarget) {
		t.Fatal("expected TargetError to unwrap to ErrInvalidTarget")
	}

	err = &TargetError{Err: sharedErrors.ErrEmptyTarget}
	want = "invalid target: target cannot be empty"
	if err.Error() != want {
		t.Fatalf("expected %s, got %s", want, err.Error())
	}
}

func TestFormatError(t *testing.T) {
	err := &FormatError{Format: "xml"}
	want := `unsupported output format "xml" (use text, json or yaml)`
	if err.Error() != want {
		t.Fatalf("expected %s, got %s", want, err.Error())
	}
	if !errors.Is(err, sharedErrors.ErrUnsupportedFormat) {
		t.Fatal("expected FormatError to unwrap to ErrUnsupportedFormat")
	}
}
