package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/assistant.txt
var assistantRaw string

// Assistant returns the ordering assistant's system prompt, trimmed. The
// embed is compile-time, so this is safe to call concurrently.
func Assistant() string {
	return strings.TrimSpace(assistantRaw)
}
