// Package errorhandler runs the root command and turns cobra's stderr chatter into
// a single error value for main to print.
package errorhandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// Normalizer cleans captured stderr output into a user-facing message.
type Normalizer interface {
	Normalize(raw string) string
}

// Executor runs cobra commands with stderr captured.
type Executor struct {
	normalizer Normalizer
}

// NewExecutor constructs an Executor using DefaultNormalizer.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs cmd with a background context.
func (e *Executor) Execute(cmd *cobra.Command) error {
	return e.ExecuteContext(context.Background(), cmd)
}

// ExecuteContext runs cmd and returns nil on success or a *CommandError holding the
// normalized stderr output and the original error.
func (e *Executor) ExecuteContext(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	original := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(original)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	return &CommandError{message: e.normalizer.Normalize(errBuf.String()), cause: err}
}

// CommandError is a command failure with its normalized stderr output.
type CommandError struct {
	message string
	cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message == "" || strings.Contains(e.message, e.cause.Error()):
		if e.message == "" {
			return e.cause.Error()
		}

		return e.message
	default:
		return e.message + ": " + e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DefaultNormalizer trims whitespace and drops cobra's "Error: " prefix while
// keeping multi-line usage hints.
type DefaultNormalizer struct{}

// Normalize implements Normalizer.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
