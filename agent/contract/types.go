package contract

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged turn of conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ToolDefinition describes one operation the reasoning capability may invoke.
// The catalog must be reproduced exactly as named and shaped because the
// remote model binds to these names.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type DecisionType string

const (
	DecisionText    DecisionType = "text"
	DecisionToolUse DecisionType = "tool_use"
)

// Decision is the reasoning capability's output for one call: free text, or
// a single tool invocation request with optional accompanying text.
type Decision struct {
	Type      DecisionType
	Text      string
	ToolName  string
	ToolInput map[string]any
}
