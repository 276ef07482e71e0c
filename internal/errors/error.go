package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryBuild    Category = "build"
	CategoryConfig   Category = "config"
	CategoryDocument Category = "document"
	CategoryPreview  Category = "preview"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// Location represents a source location inside a document description.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// BuildError is a structured error with a code, an optional source
// location and a fix suggestion.
type BuildError struct {
	// Code is a unique error identifier (e.g., "H001").
	Code string

	// Category is the error type (build, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, usually naming the offending value.
	Detail string

	// Location is the document location where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *BuildError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a BuildError with the same code.
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithLocation adds a source location to the error and loads the
// surrounding lines when the file is readable.
func (e *BuildError) WithLocation(file string, line, column int) *BuildError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *BuildError) WithSuggestion(s string) *BuildError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *BuildError) WithDetail(d string) *BuildError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with fmt.Sprintf formatting.
func (e *BuildError) WithDetailf(format string, args ...any) *BuildError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *BuildError) Wrap(err error) *BuildError {
	e.Wrapped = err
	return e
}

// contextLines is the number of source lines kept around an error location.
const contextLines = 5

// contextStart returns the line number of the first context line for line.
func contextStart(line int) int {
	if start := line - contextLines/2; start > 1 {
		return start
	}
	return 1
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := contextStart(targetLine)
	endLine := targetLine + contextLines/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a BuildError from a registered error code.
func New(code string) *BuildError {
	template, ok := registry[code]
	if !ok {
		return &BuildError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &BuildError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new BuildError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *BuildError {
	return &BuildError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a BuildError.
func FromError(err error, code string) *BuildError {
	if err == nil {
		return nil
	}
	if be, ok := err.(*BuildError); ok {
		return be
	}
	return New(code).Wrap(err)
}
