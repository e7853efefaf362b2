package bridge

import (
	"reflect"
	"testing"

	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	menux "github.com/ordervoice/kiosk-agent/agent/menu"
	toolx "github.com/ordervoice/kiosk-agent/agent/tool"
)

func searchResult(t *testing.T, query string) toolx.Result {
	t.Helper()
	e := toolx.NewExecutor(menux.NewStatic(), cartx.DefaultTaxRate)
	return e.Execute(toolx.OpSearchProduct, toolx.Input{Query: query}, cartx.New())
}

func TestR1UserSearchEmitsProductCardWithFirstMatch(t *testing.T) {
	t.Parallel()

	card := Process(searchResult(t, "chicken"), SourceUserQuery)
	if card == nil {
		t.Fatal("expected a card")
	}
	if card.Type != CardProduct {
		t.Fatalf("type = %s, want %s", card.Type, CardProduct)
	}
	if card.AnimationDelay != 0 {
		t.Fatalf("animationDelay = %d, want 0", card.AnimationDelay)
	}
	if card.RecommendationBadge != "" {
		t.Fatal("user-initiated card must carry no badge")
	}
	product, ok := card.Data.(toolx.ProductView)
	if !ok {
		t.Fatalf("unexpected data type: %T", card.Data)
	}
	if product.ID != "general-tsos" {
		t.Fatalf("first match = %s, want general-tsos", product.ID)
	}
	if card.ID == "" || card.Timestamp == 0 {
		t.Fatal("card identity fields not populated")
	}
}

func TestR5AISearchEmitsRecommendationCardWithBadge(t *testing.T) {
	t.Parallel()

	card := Process(searchResult(t, "chicken"), SourceAIRecommendation)
	if card == nil {
		t.Fatal("expected a card")
	}
	if card.Type != CardRecommendation {
		t.Fatalf("type = %s, want %s", card.Type, CardRecommendation)
	}
	if card.RecommendationBadge != "Chef's Suggestion" {
		t.Fatalf("badge = %q", card.RecommendationBadge)
	}
	if card.AnimationDelay != 150 {
		t.Fatalf("animationDelay = %d, want 150", card.AnimationDelay)
	}
}

func TestR2ReceiptCardFromTotalAndGetCart(t *testing.T) {
	t.Parallel()

	e := toolx.NewExecutor(menux.NewStatic(), cartx.DefaultTaxRate)
	c := cartx.New()
	e.Execute(toolx.OpAddToCart, toolx.Input{ProductID: "kung-pao-chicken", Quantity: 1}, c)
	e.Execute(toolx.OpAddToCart, toolx.Input{ProductID: "spring-rolls", Quantity: 2}, c)

	for _, op := range []toolx.Op{toolx.OpCalculateOrderTotal, toolx.OpGetCart} {
		card := Process(e.Execute(op, toolx.Input{}, c), SourceUserQuery)
		if card == nil {
			t.Fatalf("%s: expected a card", op)
		}
		if card.Type != CardReceipt {
			t.Fatalf("%s: type = %s", op, card.Type)
		}
		data := card.Data.(ReceiptData)
		if data.Subtotal != 31.97 || data.Tax != 2.84 || data.Total != 34.81 {
			t.Fatalf("%s: totals = %v/%v/%v", op, data.Subtotal, data.Tax, data.Total)
		}
		if data.ItemCount != 3 || len(data.Items) != 2 {
			t.Fatalf("%s: itemCount=%d lines=%d", op, data.ItemCount, len(data.Items))
		}
		if card.AnimationDelay != 100 {
			t.Fatalf("%s: animationDelay = %d", op, card.AnimationDelay)
		}
	}
}

func TestR3CartUpdateCards(t *testing.T) {
	t.Parallel()

	e := toolx.NewExecutor(menux.NewStatic(), cartx.DefaultTaxRate)
	c := cartx.New()

	added := Process(e.Execute(toolx.OpAddToCart, toolx.Input{ProductID: "mapo-tofu"}, c), SourceUserQuery)
	if added == nil || added.Type != CardCartUpdate {
		t.Fatalf("unexpected add card: %+v", added)
	}
	data := added.Data.(CartUpdateData)
	if data.Action != ActionAdded || data.CartSize != 1 {
		t.Fatalf("unexpected add data: %+v", data)
	}
	if data.Message == "" {
		t.Fatal("cart update must carry the tool message")
	}
	if added.AnimationDelay != 50 {
		t.Fatalf("animationDelay = %d, want 50", added.AnimationDelay)
	}

	removed := Process(e.Execute(toolx.OpRemoveFromCart, toolx.Input{ProductID: "mapo-tofu"}, c), SourceUserQuery)
	if removed == nil || removed.Data.(CartUpdateData).Action != ActionRemoved {
		t.Fatalf("unexpected remove card: %+v", removed)
	}
}

func TestR4NoCard(t *testing.T) {
	t.Parallel()

	e := toolx.NewExecutor(menux.NewStatic(), cartx.DefaultTaxRate)
	c := cartx.New()

	// Zero search matches.
	if card := Process(searchResult(t, "pizza"), SourceUserQuery); card != nil {
		t.Fatalf("zero matches must emit no card, got %s", card.Type)
	}
	// Failed add.
	if card := Process(e.Execute(toolx.OpAddToCart, toolx.Input{ProductID: "nope"}, c), SourceUserQuery); card != nil {
		t.Fatalf("failed add must emit no card, got %s", card.Type)
	}
	// Empty cart receipt.
	if card := Process(e.Execute(toolx.OpCalculateOrderTotal, toolx.Input{}, c), SourceUserQuery); card != nil {
		t.Fatalf("empty cart must emit no card, got %s", card.Type)
	}
	// Unknown tool.
	if card := Process(e.ExecuteNamed("order_pizza", nil, c), SourceUserQuery); card != nil {
		t.Fatalf("unknown tool must emit no card, got %s", card.Type)
	}
}

func TestBridgeDeterminismModuloClock(t *testing.T) {
	t.Parallel()

	res := searchResult(t, "kung pao")
	a := Process(res, SourceAIRecommendation)
	b := Process(res, SourceAIRecommendation)
	if a == nil || b == nil {
		t.Fatal("expected cards")
	}

	// Identity and clock fields are per-card; everything else must match.
	a.ID, b.ID = "", ""
	a.Timestamp, b.Timestamp = 0, 0
	a.BridgeLatencyMs, b.BridgeLatencyMs = 0, 0
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("bridge output not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestBridgeLatencyIsMeasured(t *testing.T) {
	t.Parallel()

	card := Process(searchResult(t, ""), SourceUserQuery)
	if card == nil {
		t.Fatal("expected a card")
	}
	if card.BridgeLatencyMs < 0 {
		t.Fatalf("latency = %v", card.BridgeLatencyMs)
	}
}
