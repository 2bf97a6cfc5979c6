package notify

import (
	"fmt"
	"io"
	"sync"
	"unicode"
	"unicode/utf8"
)

// StageSeparatingWriter wraps an io.Writer and writes a blank line before every
// stage title (a line starting with a pictographic emoji) that follows earlier output.
//
//	out := notify.NewStageSeparatingWriter(cmd.OutOrStdout())
//	cmd.SetOut(out)
type StageSeparatingWriter struct {
	underlying io.Writer
	hasWritten bool
	mu         sync.Mutex
}

// NewStageSeparatingWriter creates a new StageSeparatingWriter wrapping the given writer.
func NewStageSeparatingWriter(underlying io.Writer) *StageSeparatingWriter {
	return &StageSeparatingWriter{underlying: underlying}
}

// Underlying returns the wrapped writer.
func (w *StageSeparatingWriter) Underlying() io.Writer {
	return w.underlying
}

// Write implements io.Writer.
func (w *StageSeparatingWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(data) == 0 {
		return 0, nil
	}

	if w.hasWritten && startsWithEmoji(data) {
		_, err := w.underlying.Write([]byte{'\n'})
		if err != nil {
			return 0, fmt.Errorf("write stage separator: %w", err)
		}
	}

	n, err := w.underlying.Write(data)
	if n > 0 {
		w.hasWritten = true
	}

	if err != nil {
		return n, fmt.Errorf("write data: %w", err)
	}

	return n, nil
}

// startsWithEmoji reports whether data starts with an "Other Symbol" rune that is not
// one of the message symbols (► ✔ ✗ ⚠ ℹ ✚).
func startsWithEmoji(data []byte) bool {
	first, _ := utf8.DecodeRune(data)
	if first == utf8.RuneError {
		return false
	}

	switch first {
	case '►', '✔', '✗', '⚠', 'ℹ', '✚':
		return false
	}

	return unicode.Is(unicode.So, first)
}
