package oaserrors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &NotFoundError{
			Path:    "api.json",
			Message: "is a directory",
			Cause:   errors.New("underlying"),
		}
		expected := "not found: api.json: is a directory: underlying"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &NotFoundError{}
		if err.Error() != "not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrNotFound", func(t *testing.T) {
		err := &NotFoundError{Path: "x.json"}
		if !errors.Is(err, ErrNotFound) {
			t.Error("NotFoundError should match ErrNotFound")
		}
		if errors.Is(err, ErrMalformedInput) {
			t.Error("NotFoundError should not match ErrMalformedInput")
		}
	})

	t.Run("Unwrap exposes fs.ErrNotExist", func(t *testing.T) {
		err := fmt.Errorf("loader: %w", &NotFoundError{Path: "x.json", Cause: fs.ErrNotExist})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("wrapped cause should be reachable")
		}
	})
}

func TestMalformedInputError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("invalid character '}'")
		err := &MalformedInputError{
			Path:    "/path/to/api.json",
			Line:    12,
			Column:  4,
			Message: "invalid JSON",
			Cause:   cause,
		}
		expected := "malformed input in /path/to/api.json at line 12, column 4: invalid JSON: invalid character '}'"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &MalformedInputError{Line: 3}
		if err.Error() != "malformed input at line 3" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &MalformedInputError{}
		if err.Error() != "malformed input" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &MalformedInputError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("As extracts MalformedInputError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &MalformedInputError{Path: "api.json", Line: 5})
		var malformed *MalformedInputError
		if !errors.As(err, &malformed) {
			t.Fatal("errors.As should succeed")
		}
		if malformed.Line != 5 {
			t.Errorf("unexpected line: %d", malformed.Line)
		}
		if !errors.Is(err, ErrMalformedInput) {
			t.Error("wrapped MalformedInputError should match ErrMalformedInput")
		}
	})
}

func TestWriteError(t *testing.T) {
	t.Run("Error message with section", func(t *testing.T) {
		err := &WriteError{
			Path:    "out/endpoints.csv",
			Section: "endpoints",
			Cause:   fs.ErrPermission,
		}
		expected := "write error (endpoints): out/endpoints.csv: permission denied"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without section", func(t *testing.T) {
		err := &WriteError{Path: "out"}
		if err.Error() != "write error: out" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrWrite and cause", func(t *testing.T) {
		err := fmt.Errorf("export: %w", &WriteError{Path: "out", Cause: fs.ErrPermission})
		if !errors.Is(err, ErrWrite) {
			t.Error("WriteError should match ErrWrite")
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Error("WriteError should expose its cause")
		}
		if errors.Is(err, ErrNotFound) {
			t.Error("WriteError should not match ErrNotFound")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("invalid value")
		err := &ConfigError{
			Option:  "format",
			Value:   "xml",
			Message: "must be text, json or yaml",
			Cause:   cause,
		}
		expected := "configuration error for format (value: xml): must be text, json or yaml: invalid value"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with nil value excluded", func(t *testing.T) {
		err := &ConfigError{Option: "input", Message: "required"}
		if err.Error() != "configuration error for input: required" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		if !errors.Is(&ConfigError{}, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrMalformedInput,
		ErrWrite,
		ErrConfig,
	}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i != j && errors.Is(s1, s2) {
				t.Errorf("sentinel errors should be distinct: %v should not match %v", s1, s2)
			}
		}
	}
}
