// Package confirm asks yes/no questions on stdin, such as whether to overwrite an existing file.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Test override variables with mutexes for thread safety.
var (
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	stdinReaderOverride io.Reader

	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerMu sync.RWMutex
	//nolint:gochecknoglobals // dependency injection for tests
	ttyCheckerOverride func() bool
)

// SetStdinReaderForTests overrides the stdin reader for testing.
// Returns a restore function that should be called to reset the override.
func SetStdinReaderForTests(reader io.Reader) func() {
	stdinReaderMu.Lock()

	previous := stdinReaderOverride
	stdinReaderOverride = reader

	stdinReaderMu.Unlock()

	return func() {
		stdinReaderMu.Lock()

		stdinReaderOverride = previous

		stdinReaderMu.Unlock()
	}
}

// SetTTYCheckerForTests overrides the TTY checker for testing.
// Returns a restore function that should be called to reset the override.
func SetTTYCheckerForTests(checker func() bool) func() {
	ttyCheckerMu.Lock()

	previous := ttyCheckerOverride
	ttyCheckerOverride = checker

	ttyCheckerMu.Unlock()

	return func() {
		ttyCheckerMu.Lock()

		ttyCheckerOverride = previous

		ttyCheckerMu.Unlock()
	}
}

func getStdinReader() io.Reader {
	stdinReaderMu.RLock()
	defer stdinReaderMu.RUnlock()

	if stdinReaderOverride != nil {
		return stdinReaderOverride
	}

	return os.Stdin
}

// IsTTY returns true if stdin is connected to a terminal.
func IsTTY() bool {
	ttyCheckerMu.RLock()

	override := ttyCheckerOverride

	ttyCheckerMu.RUnlock()

	if override != nil {
		return override()
	}

	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string, defaultYes bool) (bool, error)
}

// StdinConfirmer reads answers from stdin and writes questions to a writer.
type StdinConfirmer struct {
	writer io.Writer
	reader *bufio.Reader
}

// NewStdinConfirmer creates a confirmer writing questions to writer.
func NewStdinConfirmer(writer io.Writer) *StdinConfirmer {
	if writer == nil {
		writer = os.Stdout
	}

	return &StdinConfirmer{writer: writer}
}

// Confirm prints question with a [y/N] or [Y/n] hint and reads one line.
// An empty answer or end of input yields defaultYes.
func (c *StdinConfirmer) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	_, err := fmt.Fprintf(c.writer, "? %s %s ", question, hint)
	if err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	if c.reader == nil {
		c.reader = bufio.NewReader(getStdinReader())
	}

	return ParseAnswer(c.reader, defaultYes), nil
}

// ParseAnswer reads one line from reader and interprets it as yes or no.
// A *bufio.Reader is used as is so its read-ahead survives across calls.
func ParseAnswer(reader io.Reader, defaultYes bool) bool {
	buffered, ok := reader.(*bufio.Reader)
	if !ok {
		buffered = bufio.NewReader(reader)
	}

	input, err := buffered.ReadString('\n')
	if err != nil && input == "" {
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultYes
	}
}
