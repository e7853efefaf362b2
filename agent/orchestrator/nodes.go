package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	bridgex "github.com/ordervoice/kiosk-agent/agent/bridge"
	contractx "github.com/ordervoice/kiosk-agent/agent/contract"
	toolx "github.com/ordervoice/kiosk-agent/agent/tool"
)

const (
	// followUpPrompt turns a raw tool result into a spoken reply on the
	// second reasoning pass.
	followUpPrompt = "Based on the tool result above, give a natural conversational response to the customer. Keep it short and friendly."

	// fallbackReply covers a tool-use turn whose second reasoning pass
	// produced nothing usable.
	fallbackReply = "Done!"

	genericReply = "I'd be happy to help! You can ask about our menu, order dishes by name, or ask for recommendations. 有什么可以帮您的吗？"
)

func validateTurn(in turnInput) (*turnState, error) {
	msg := strings.TrimSpace(in.Request.Message)
	if msg == "" {
		return nil, contractx.ErrInvalidMessage
	}
	if in.Cart == nil {
		return nil, fmt.Errorf("%w: cart is not loaded", contractx.ErrValidation)
	}

	req := in.Request
	req.Message = msg
	return &turnState{request: req, cart: in.Cart}, nil
}

// runStrategy executes the online strategy when a reasoner is available and
// the engine is in online mode; any reasoner failure on the first pass
// degrades the turn to the local matcher instead of failing it.
func (o *Orchestrator) runStrategy(ctx context.Context, st *turnState) (*turnState, error) {
	if o.mode == ModeOffline || o.reasoner == nil {
		return o.runOffline(st), nil
	}

	msgs := make([]contractx.Message, 0, len(st.request.History)+1)
	msgs = append(msgs, st.request.History...)
	msgs = append(msgs, contractx.Message{Role: contractx.RoleUser, Content: st.request.Message})

	decision, err := o.reasoner.Invoke(ctx, msgs, toolx.Definitions())
	if err != nil {
		log.Warn().Err(err).
			Str("sessionId", st.request.SessionID).
			Msg("reasoner unavailable, falling back to local matcher")
		return o.runOffline(st), nil
	}

	if decision.Type != contractx.DecisionToolUse {
		st.reply = decision.Text
		return st, nil
	}

	res := o.exec.ExecuteNamed(decision.ToolName, decision.ToolInput, st.cart)
	if card := bridgex.Process(res, bridgex.SourceUserQuery); card != nil {
		st.cards = append(st.cards, *card)
	}

	st.reply = o.narrateToolResult(ctx, msgs, decision, res)
	return st, nil
}

func (o *Orchestrator) runOffline(st *turnState) *turnState {
	st.reply, st.cards = o.matcher.Handle(st.request.Message, st.cart)
	return st
}

// narrateToolResult feeds the tool result back as a synthetic assistant turn
// and asks for a conversational rendering. A failed second pass falls back to
// the first decision's text.
func (o *Orchestrator) narrateToolResult(ctx context.Context, msgs []contractx.Message, decision contractx.Decision, res toolx.Result) string {
	summary := res.SummaryJSON()

	followUp := make([]contractx.Message, 0, len(msgs)+2)
	followUp = append(followUp, msgs...)
	followUp = append(followUp,
		contractx.Message{
			Role:    contractx.RoleAssistant,
			Content: fmt.Sprintf("[Tool called: %s] %s", decision.ToolName, summary),
		},
		contractx.Message{Role: contractx.RoleUser, Content: followUpPrompt},
	)

	final, err := o.reasoner.Invoke(ctx, followUp, nil)
	if err != nil || final.Type != contractx.DecisionText || strings.TrimSpace(final.Text) == "" {
		if err != nil {
			log.Warn().Err(err).
				Str("tool", decision.ToolName).
				Msg("follow-up reasoning failed, using first-pass text")
		}
		if strings.TrimSpace(decision.Text) != "" {
			return decision.Text
		}
		return fallbackReply
	}
	return final.Text
}

// finalizeReply seals the envelope: totals always come from the live cart so
// the reported state matches what the next turn will see.
func (o *Orchestrator) finalizeReply(st *turnState) (TurnResponse, error) {
	if strings.TrimSpace(st.reply) == "" {
		st.reply = genericReply
	}

	_, _, total := st.cart.Totals(o.taxRate)
	return TurnResponse{
		Reply: st.reply,
		Cards: st.cards,
		CartState: CartState{
			ItemCount: st.cart.UnitCount(),
			Total:     total,
		},
	}, nil
}
