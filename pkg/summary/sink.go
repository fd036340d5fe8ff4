package summary

import (
	"io"
	"os"
	"strings"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
)

// StepSummaryEnv is the variable GitHub Actions sets to the job summary file path.
const StepSummaryEnv = "GITHUB_STEP_SUMMARY"

// Sink receives a rendered document. Implementations make exactly one attempt.
type Sink interface {
	Append(content string) error
}

// FileSink appends to a file, creating it when missing. The file is opened
// and closed within each Append call.
type FileSink struct {
	Path string
	// Overwrite truncates the file instead of appending.
	Overwrite bool
}

// Append writes content to the file.
func (s FileSink) Append(content string) (err error) {
	if strings.TrimSpace(s.Path) == "" {
		return foundation.SinkError("summary file path is empty").Build()
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if s.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(s.Path, flags, 0o644)
	if err != nil {
		return foundation.WrapError(err, foundation.CategorySink, "cannot open summary file").
			Fatal().
			UserAction().
			WithContext("path", s.Path).
			Build()
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = foundation.WrapError(cerr, foundation.CategorySink, "cannot close summary file").
				Fatal().
				WithContext("path", s.Path).
				Build()
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return foundation.WrapError(err, foundation.CategorySink, "cannot write summary file").
			Fatal().
			WithContext("path", s.Path).
			Build()
	}
	return nil
}

// EnvSink resolves the destination path from an environment variable at write time.
type EnvSink struct {
	// Var defaults to StepSummaryEnv.
	Var       string
	Overwrite bool
}

// Path returns the resolved file path.
func (s EnvSink) Path() (string, error) {
	name := s.Var
	if name == "" {
		name = StepSummaryEnv
	}
	path, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(path) == "" {
		return "", foundation.SinkError(name+" environment variable is not set").
			WithContext("env_var", name).
			Build()
	}
	return path, nil
}

// Append writes content to the file named by the environment variable.
func (s EnvSink) Append(content string) error {
	path, err := s.Path()
	if err != nil {
		return err
	}
	return FileSink{Path: path, Overwrite: s.Overwrite}.Append(content)
}

// WriterSink writes to an io.Writer such as os.Stdout.
type WriterSink struct {
	W io.Writer
}

// Append writes content to the writer.
func (s WriterSink) Append(content string) error {
	if s.W == nil {
		return foundation.SinkError("writer is nil").Build()
	}
	if _, err := io.WriteString(s.W, content); err != nil {
		return foundation.WrapError(err, foundation.CategorySink, "cannot write summary").
			Fatal().
			Build()
	}
	return nil
}
