// Package reasoner adapts an OpenAI-compatible chat completions endpoint to
// the engine's reasoning-capability contract.
package reasoner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/ordervoice/kiosk-agent/agent/contract"
	promptx "github.com/ordervoice/kiosk-agent/agent/prompt"
	openrouterx "github.com/ordervoice/kiosk-agent/pkg/openrouter"
)

type Reasoner struct {
	client       *openaisdk.Client
	model        string
	maxTokens    int64
	temperature  float64
	systemPrompt string
}

var _ contractx.Reasoner = (*Reasoner)(nil)

func New(client *openaisdk.Client, cfg openrouterx.Config) (*Reasoner, error) {
	if client == nil {
		return nil, errors.New("openai client is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("%w: model name is required", contractx.ErrValidation)
	}
	return &Reasoner{
		client:       client,
		model:        model,
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
		systemPrompt: promptx.Assistant(),
	}, nil
}

// Invoke submits the history (plus the ordering-assistant system prompt) and
// optional tool catalog. A tool call in the response wins over plain text;
// only the first call is honored because the engine executes at most one
// tool per reasoning step.
func (r *Reasoner) Invoke(ctx context.Context, msgs []contractx.Message, tools []contractx.ToolDefinition) (contractx.Decision, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(r.model),
		Messages: r.toChatMessages(msgs),
	}
	if r.maxTokens > 0 {
		params.MaxTokens = openaisdk.Int(r.maxTokens)
	}
	if r.temperature > 0 {
		params.Temperature = openaisdk.Float(r.temperature)
	}
	if len(tools) > 0 {
		params.Tools = toChatTools(tools)
	}

	resp, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return contractx.Decision{}, fmt.Errorf("%w: chat completion: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return contractx.Decision{}, fmt.Errorf("%w: no choices in completion", contractx.ErrSchemaViolation)
	}

	msg := resp.Choices[0].Message
	text := strings.TrimSpace(msg.Content)

	if len(msg.ToolCalls) > 0 {
		call := msg.ToolCalls[0]
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			return contractx.Decision{}, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		input := map[string]any{}
		if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
			if err := json.Unmarshal([]byte(raw), &input); err != nil {
				return contractx.Decision{}, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, name, err)
			}
		}

		return contractx.Decision{
			Type:      contractx.DecisionToolUse,
			ToolName:  name,
			ToolInput: input,
			Text:      text,
		}, nil
	}

	return contractx.Decision{
		Type: contractx.DecisionText,
		Text: text,
	}, nil
}

func (r *Reasoner) toChatMessages(msgs []contractx.Message) []openaisdk.ChatCompletionMessageParamUnion {
	out := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(msgs)+1)
	out = append(out, openaisdk.SystemMessage(r.systemPrompt))
	for _, m := range msgs {
		switch m.Role {
		case contractx.RoleAssistant:
			out = append(out, openaisdk.AssistantMessage(m.Content))
		default:
			out = append(out, openaisdk.UserMessage(m.Content))
		}
	}
	return out
}

func toChatTools(tools []contractx.ToolDefinition) []openaisdk.ChatCompletionToolParam {
	out := make([]openaisdk.ChatCompletionToolParam, 0, len(tools))
	for _, t := range tools {
		out = append(out, openaisdk.ChatCompletionToolParam{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openaisdk.String(t.Description),
				Parameters:  openaisdk.FunctionParameters(t.InputSchema),
			},
		})
	}
	return out
}
