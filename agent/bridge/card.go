package bridge

import toolx "github.com/ordervoice/kiosk-agent/agent/tool"

type CardType string

const (
	CardProduct        CardType = "product_card"
	CardRecommendation CardType = "recommendation_card"
	CardReceipt        CardType = "receipt_card"
	CardCartUpdate     CardType = "cart_update"
)

// Source discriminates a card triggered by explicit user action from one the
// reasoning/recommendation path generated proactively. The two render with
// different urgency and dwell times downstream.
type Source string

const (
	SourceUserQuery        Source = "user_query"
	SourceAIRecommendation Source = "ai_recommendation"
)

// Card is one transient display unit for the visual renderer. Cards are
// produced per turn and never persisted.
type Card struct {
	ID                  string   `json:"id"`
	Type                CardType `json:"type"`
	Data                any      `json:"data"`
	Timestamp           int64    `json:"timestamp"` // unix millis
	AnimationDelay      int      `json:"animationDelay"`
	BridgeLatencyMs     float64  `json:"bridgeLatencyMs"`
	RecommendationBadge string   `json:"recommendationBadge,omitempty"`
}

type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
)

// ReceiptData is the receipt_card payload.
type ReceiptData struct {
	Items     []toolx.LineView `json:"items"`
	Subtotal  float64          `json:"subtotal"`
	Tax       float64          `json:"tax"`
	Total     float64          `json:"total"`
	ItemCount int              `json:"itemCount"`
}

// CartUpdateData is the cart_update payload.
type CartUpdateData struct {
	Action   Action         `json:"action"`
	Item     toolx.ItemView `json:"item"`
	CartSize int            `json:"cartSize"`
	Message  string         `json:"message"`
}
