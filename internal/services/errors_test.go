package services_test

import (
	"errors"
	"strings"
	"testing"

	"vidsort/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "ffprobe", "probe", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"ffprobe", "probe", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "organizer", "move", "rename failed", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestExitCodeMapping(t *testing.T) {
	validationErr := services.Wrap(services.ErrValidation, "config", "validate", "invalid", nil)
	if code := services.ExitCode(validationErr); code != 2 {
		t.Fatalf("expected exit code 2 for validation error, got %d", code)
	}

	missingErr := services.Wrap(services.ErrNotFound, "analyze", "scan", "no such directory", nil)
	if code := services.ExitCode(missingErr); code != 3 {
		t.Fatalf("expected exit code 3 for not found, got %d", code)
	}

	transientErr := services.Wrap(services.ErrTransient, "organizer", "move", "copy failed", errors.New("io"))
	if code := services.ExitCode(transientErr); code != 1 {
		t.Fatalf("expected exit code 1 for transient error, got %d", code)
	}

	if code := services.ExitCode(nil); code != 0 {
		t.Fatalf("expected exit code 0 for nil error, got %d", code)
	}
}
