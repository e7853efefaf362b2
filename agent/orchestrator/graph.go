package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
)

func (o *Orchestrator) compileHandleTurnGraph(ctx context.Context) (compose.Runnable[turnInput, TurnResponse], error) {
	graph := compose.NewGraph[turnInput, TurnResponse]()

	if err := graph.AddLambdaNode("validate_turn",
		compose.InvokableLambda(func(ctx context.Context, in turnInput) (*turnState, error) {
			return validateTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_turn: %w", err)
	}

	if err := graph.AddLambdaNode("run_strategy",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (*turnState, error) {
			return o.runStrategy(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node run_strategy: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (TurnResponse, error) {
			return o.finalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_turn"},
		{"validate_turn", "run_strategy"},
		{"run_strategy", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.handle_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile turn graph: %w", err)
	}
	return runner, nil
}
