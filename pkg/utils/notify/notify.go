package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// MessageType defines the type of notification message.
type MessageType int

const (
	// ErrorType represents an error message (red, with ✗ symbol).
	ErrorType MessageType = iota
	// WarningType represents a warning message (yellow, with ⚠ symbol).
	WarningType
	// ActivityType represents an activity message (default color, with ► symbol).
	ActivityType
	// GenerateType represents a file write message (default color, with ✚ symbol).
	GenerateType
	// SuccessType represents a success message (green, with ✔ symbol).
	SuccessType
	// InfoType represents an informational message (blue, with ℹ symbol).
	InfoType
	// TitleType represents a stage title (bold, prefixed by an emoji).
	TitleType
)

// Message represents a notification to be displayed to the user.
type Message struct {
	Type    MessageType
	Content string
	// Emoji prefixes TitleType messages. Defaults to 🚀.
	Emoji string
	// Writer defaults to os.Stdout.
	Writer io.Writer
	// Args are format arguments for Content.
	Args []any
}

type style struct {
	symbol string
	color  *fcolor.Color
}

//nolint:gochecknoglobals // static style table
var styles = map[MessageType]style{
	ErrorType:    {symbol: "✗ ", color: fcolor.New(fcolor.FgRed)},
	WarningType:  {symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)},
	ActivityType: {symbol: "► ", color: fcolor.New(fcolor.Reset)},
	GenerateType: {symbol: "✚ ", color: fcolor.New(fcolor.Reset)},
	SuccessType:  {symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)},
	InfoType:     {symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)},
	TitleType:    {symbol: "", color: fcolor.New(fcolor.Reset, fcolor.Bold)},
}

// Errorf writes an error message to the writer.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message to the writer.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes an activity message to the writer.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Generatef writes a file write message to the writer.
func Generatef(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: GenerateType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message to the writer.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// Infof writes an informational message to the writer.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a stage title prefixed by emoji to the writer.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{Type: TitleType, Content: format, Args: args, Emoji: emoji, Writer: writer})
}

// WriteMessage writes a styled message. Prefer the convenience functions
// (Errorf, Warningf, Activityf, Generatef, Successf, Infof, Titlef).
//
// Blank lines between stages are inserted by [StageSeparatingWriter], not here.
func WriteMessage(msg Message) {
	if msg.Writer == nil {
		msg.Writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	st, ok := styles[msg.Type]
	if !ok {
		st = style{color: fcolor.New(fcolor.Reset)}
	}

	prefix := st.symbol

	if msg.Type == TitleType {
		prefix = msg.Emoji
		if prefix == "" {
			prefix = "🚀"
		}

		prefix += " "
	}

	content = indentMultilineContent(content, prefix)

	_, err := st.color.Fprintf(msg.Writer, "%s%s\n", prefix, content)
	handleNotifyError(err)
}

// handleNotifyError reports print failures on stderr instead of returning them.
func handleNotifyError(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

// indentMultilineContent aligns continuation lines with the text after the prefix.
func indentMultilineContent(content, prefix string) string {
	if prefix == "" || !strings.Contains(content, "\n") {
		return content
	}

	indent := strings.Repeat(" ", len([]rune(prefix)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}

		lines[i] = indent + lines[i]
	}

	return strings.Join(lines, "\n")
}
