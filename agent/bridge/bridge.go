// Package bridge maps one tool result plus its invocation source onto at
// most one typed display card. The mapping is pure over its inputs, so card
// generation is reproducible and testable independently of tool execution.
//
// Rule precedence, by operation:
//
//	R1: search_product, user-initiated, >=1 match  -> product_card (first match)
//	R5: search_product, AI-initiated,  >=1 match   -> recommendation_card + badge
//	R2: calculate_order_total | get_cart, >=1 row  -> receipt_card
//	R3: add_to_cart | remove_from_cart, success    -> cart_update
//	R4: anything else                              -> no card
package bridge

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	toolx "github.com/ordervoice/kiosk-agent/agent/tool"
)

const (
	badgeChefsSuggestion = "Chef's Suggestion"

	delayProduct        = 0
	delayCartUpdate     = 50
	delayReceipt        = 100
	delayRecommendation = 150

	// LatencyBudgetMs is the processing budget per card. Exceeding it is
	// flagged, never penalized: the card still ships.
	LatencyBudgetMs = 200
)

// Process applies the bridge rules to one tool result. It returns nil when
// no rule matches (R4): zero search matches, an empty cart, any failed
// result, or an unrecognized operation.
func Process(res toolx.Result, source Source) *Card {
	start := time.Now()

	card := buildCard(res, source)
	if card == nil {
		return nil
	}

	card.ID = uuid.NewString()
	card.Timestamp = time.Now().UnixMilli()
	card.BridgeLatencyMs = cartx.Round2(float64(time.Since(start).Microseconds()) / 1000)
	if card.BridgeLatencyMs > LatencyBudgetMs {
		log.Warn().
			Str("cardType", string(card.Type)).
			Float64("latencyMs", card.BridgeLatencyMs).
			Int("budgetMs", LatencyBudgetMs).
			Msg("bridge latency budget exceeded")
	}
	return card
}

func buildCard(res toolx.Result, source Source) *Card {
	if !res.Success || res.Payload == nil {
		return nil
	}

	switch out := res.Payload.(type) {
	case toolx.SearchOutput:
		if len(out.Products) == 0 {
			return nil
		}
		if source == SourceAIRecommendation {
			return &Card{
				Type:                CardRecommendation,
				Data:                out.Products[0],
				AnimationDelay:      delayRecommendation,
				RecommendationBadge: badgeChefsSuggestion,
			}
		}
		return &Card{
			Type:           CardProduct,
			Data:           out.Products[0],
			AnimationDelay: delayProduct,
		}

	case toolx.CartOutput:
		return receiptCard(out.Items, out.Subtotal, out.Tax, out.Total, out.ItemCount)

	case toolx.TotalOutput:
		return receiptCard(out.Items, out.Subtotal, out.Tax, out.Total, out.ItemCount)

	case toolx.AddOutput:
		return &Card{
			Type: CardCartUpdate,
			Data: CartUpdateData{
				Action:   ActionAdded,
				Item:     out.Item,
				CartSize: out.CartSize,
				Message:  res.Message,
			},
			AnimationDelay: delayCartUpdate,
		}

	case toolx.RemoveOutput:
		return &Card{
			Type: CardCartUpdate,
			Data: CartUpdateData{
				Action:   ActionRemoved,
				Item:     out.Item,
				CartSize: out.CartSize,
				Message:  res.Message,
			},
			AnimationDelay: delayCartUpdate,
		}

	default:
		return nil
	}
}

func receiptCard(items []toolx.LineView, subtotal, tax, total float64, itemCount int) *Card {
	if len(items) == 0 {
		return nil
	}
	return &Card{
		Type: CardReceipt,
		Data: ReceiptData{
			Items:     items,
			Subtotal:  subtotal,
			Tax:       tax,
			Total:     total,
			ItemCount: itemCount,
		},
		AnimationDelay: delayReceipt,
	}
}
