package contract

import "context"

// Reasoner is the opaque reasoning capability: given conversation history and
// an optional tool catalog, it returns either free text or one tool
// invocation request. Implementations must respect ctx and bound their own
// request time; the orchestrator treats any error as a signal to fall back to
// the offline strategy.
type Reasoner interface {
	Invoke(ctx context.Context, msgs []Message, tools []ToolDefinition) (Decision, error)
}
