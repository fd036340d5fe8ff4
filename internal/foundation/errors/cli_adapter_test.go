package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("unknown style").Build(), expected: 2},
		{name: "table error", err: TableError("row mismatch").Build(), expected: 3},
		{name: "config error", err: ConfigError("bad config").Build(), expected: 7},
		{name: "sink error", err: SinkError("no summary path").Build(), expected: 11},
		{name: "filesystem error", err: FileSystemError("read failed").Build(), expected: 11},
		{name: "internal error", err: InternalError("boom").Build(), expected: 10},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		err      error
		contains string
	}{
		{
			name:     "internal error in non-verbose mode",
			err:      InternalError("internal issue").Build(),
			contains: "Internal error occurred (use -v for details)",
		},
		{
			name:     "sink error shows message and cause",
			err:      WrapError(errors.New("permission denied"), CategorySink, "cannot open summary file").Build(),
			contains: "Error: cannot open summary file: permission denied",
		},
		{
			name:     "verbose mode includes sorted context",
			verbose:  true,
			err:      TableError("row mismatch").WithContext("row", 2).WithContext("expected", 3).Build(),
			contains: "(expected=3, row=2)",
		},
		{
			name:     "unclassified error",
			err:      &customError{msg: "unknown error"},
			contains: "Error: unknown error",
		},
		{
			name:     "path and line locate the error",
			err:      ValidationError("unknown element kind").WithContext("path", "report.yaml").WithContext("line", 4).Build(),
			contains: "Error: unknown element kind (report.yaml:4)",
		},
		{
			name:     "path only",
			err:      WrapError(errors.New("permission denied"), CategorySink, "cannot open summary file").WithContext("path", "/tmp/s.md").Build(),
			contains: "Error: cannot open summary file: permission denied (/tmp/s.md)",
		},
		{
			name:     "line only",
			err:      ValidationError("unknown field").WithContext("line", 2).Build(),
			contains: "Error: unknown field (line 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewCLIErrorAdapter(tt.verbose, slog.Default())
			got := adapter.FormatError(tt.err)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("FormatError() = %q, want to contain %q", got, tt.contains)
			}
		})
	}

	if got := NewCLIErrorAdapter(false, nil).FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty string", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, stderr bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(false, logger)
	adapter.stderr = &stderr

	exitCode := -1
	adapter.exit = func(code int) { exitCode = code }

	adapter.HandleError(SinkError("GITHUB_STEP_SUMMARY is not set").WithContext("env_var", "GITHUB_STEP_SUMMARY").Build())

	if exitCode != 11 {
		t.Errorf("expected exit code 11, got %d", exitCode)
	}
	if !strings.Contains(stderr.String(), "GITHUB_STEP_SUMMARY is not set") {
		t.Errorf("expected message on stderr, got %q", stderr.String())
	}
	if !strings.Contains(logs.String(), "category=sink") || !strings.Contains(logs.String(), "retry=user") {
		t.Errorf("expected fatal error to be logged with category and retry, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("expected fatal error at error level, got %q", logs.String())
	}

	logs.Reset()
	stderr.Reset()
	adapter.HandleError(ValidationError("unknown style").Build())
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if logs.Len() != 0 {
		t.Errorf("expected non-fatal error not to be logged without -v, got %q", logs.String())
	}

	verbose := NewCLIErrorAdapter(true, logger)
	verbose.stderr = &stderr
	verbose.exit = func(code int) { exitCode = code }
	verbose.HandleError(ValidationError("unknown style").Build())
	if !strings.Contains(logs.String(), "level=WARN") {
		t.Errorf("expected non-fatal error at warn level in verbose mode, got %q", logs.String())
	}

	exitCode = -1
	adapter.HandleError(nil)
	if exitCode != -1 {
		t.Error("expected nil error not to exit")
	}
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
