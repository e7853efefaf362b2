package orchestrator

import (
	bridgex "github.com/ordervoice/kiosk-agent/agent/bridge"
	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	contractx "github.com/ordervoice/kiosk-agent/agent/contract"
)

// TurnRequest is one customer utterance plus the conversation so far. The
// frontend replays its own transcript as History; the engine itself keeps no
// message log between turns.
type TurnRequest struct {
	SessionID string
	Message   string
	History   []contractx.Message
}

// TurnResponse is the complete envelope for one turn: what to say, what to
// display, and the authoritative cart totals after any mutation.
type TurnResponse struct {
	Reply     string
	Cards     []bridgex.Card
	CartState CartState
}

// CartState is recomputed from the live cart after strategy execution, never
// echoed from tool output, so the envelope stays consistent with storage.
type CartState struct {
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}

type turnInput struct {
	Request TurnRequest
	Cart    *cartx.Cart
}

type turnState struct {
	request TurnRequest
	cart    *cartx.Cart

	reply string
	cards []bridgex.Card
}
