// Package output provides the runner's diagnostic logger. Every line passes
// through the redactor so secret values cannot leak into CI logs.
package output

import (
	"fmt"
	"io"
	"os"

	"pw2pr.dev/pw2pr/internal/redact"
)

// Splog provides structured logging and output
type Splog struct {
	writer   io.Writer
	redactor *redact.Redactor
	verbose  bool
}

// NewSplog creates a new splog instance writing to stdout
func NewSplog() *Splog {
	return &Splog{
		writer:   os.Stdout,
		redactor: redact.New(),
	}
}

// NewSplogWithWriter creates a splog writing to w, for tests
func NewSplogWithWriter(w io.Writer) *Splog {
	return &Splog{
		writer:   w,
		redactor: redact.New(),
	}
}

// Protect registers secret values that must never appear in output
func (s *Splog) Protect(secrets ...string) {
	s.redactor.Add(secrets...)
}

// SetVerbose enables debug output
func (s *Splog) SetVerbose(verbose bool) {
	s.verbose = verbose
}

func (s *Splog) write(line string) {
	fmt.Fprintln(s.writer, s.redactor.Mask(line))
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.write(fmt.Sprintf(format, args...))
}

// Step writes a pipeline step banner
func (s *Splog) Step(name string) {
	s.write(stepStyle.Render(fmt.Sprintf("----- %s -----", name)))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.write(warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.write(errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Debug writes a debug message, shown only in verbose mode
func (s *Splog) Debug(format string, args ...interface{}) {
	if !s.verbose {
		return
	}
	s.write(fmt.Sprintf(format, args...))
}
