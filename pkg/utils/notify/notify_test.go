package notify_test

import (
	"bytes"
	"testing"

	"github.com/devantler-tech/backtool/pkg/utils/notify"
	"github.com/stretchr/testify/assert"
)

func TestWriteMessage_Symbols(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		msgType notify.MessageType
		want    string
	}{
		{name: "error", msgType: notify.ErrorType, want: "✗ hello\n"},
		{name: "warning", msgType: notify.WarningType, want: "⚠ hello\n"},
		{name: "activity", msgType: notify.ActivityType, want: "► hello\n"},
		{name: "generate", msgType: notify.GenerateType, want: "✚ hello\n"},
		{name: "success", msgType: notify.SuccessType, want: "✔ hello\n"},
		{name: "info", msgType: notify.InfoType, want: "ℹ hello\n"},
		{name: "unknown", msgType: notify.MessageType(99), want: "hello\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			notify.WriteMessage(notify.Message{Type: testCase.msgType, Content: "hello", Writer: &out})

			assert.Equal(t, testCase.want, out.String())
		})
	}
}

func TestWriteMessage_FormatsArgs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.WriteMessage(notify.Message{
		Type:    notify.ErrorType,
		Content: "error: %s (%d)",
		Args:    []any{"failed", 42},
		Writer:  &out,
	})

	assert.Equal(t, "✗ error: failed (42)\n", out.String())
}

func TestWriteMessage_MultiLineContentIndented(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Successf(&out, "first line\nsecond line\n\nthird line")

	assert.Equal(t, "✔ first line\n  second line\n\n  third line\n", out.String())
}

func TestTitlef(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Titlef(&out, "📦", "installing %s", "dependencies")
	notify.Titlef(&out, "", "generating project")

	assert.Equal(t, "📦 installing dependencies\n🚀 generating project\n", out.String())
}

func TestConvenienceFunctions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Errorf(&out, "e %d", 1)
	notify.Warningf(&out, "w %d", 2)
	notify.Activityf(&out, "a %d", 3)
	notify.Generatef(&out, "g %d", 4)
	notify.Successf(&out, "s %d", 5)
	notify.Infof(&out, "i %d", 6)

	assert.Equal(t, "✗ e 1\n⚠ w 2\n► a 3\n✚ g 4\n✔ s 5\nℹ i 6\n", out.String())
}
