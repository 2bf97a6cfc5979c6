package prompt

import "errors"

// ErrPromptAborted is returned when the user cancels a prompt with Ctrl+C or Esc.
var ErrPromptAborted = errors.New("prompt aborted")

// ErrNoOptions is returned when a select prompt has nothing to choose from.
var ErrNoOptions = errors.New("select prompt has no options")
