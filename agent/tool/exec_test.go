package tool

import (
	"strings"
	"testing"

	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	menux "github.com/ordervoice/kiosk-agent/agent/menu"
)

func newTestExecutor() *Executor {
	return NewExecutor(menux.NewStatic(), cartx.DefaultTaxRate)
}

func TestSearchProductEmptyQueryMatchesFullCatalog(t *testing.T) {
	t.Parallel()

	e := newTestExecutor()
	res := e.Execute(OpSearchProduct, Input{Query: ""}, cartx.New())
	if !res.Success {
		t.Fatal("search must never fail")
	}
	out, ok := res.Payload.(SearchOutput)
	if !ok {
		t.Fatalf("unexpected payload type: %T", res.Payload)
	}
	if out.ResultCount != len(menux.NewStatic().Items()) {
		t.Fatalf("resultCount = %d", out.ResultCount)
	}
	if out.Products[0].ID != "spring-rolls" {
		t.Fatalf("catalog order not preserved, first = %s", out.Products[0].ID)
	}
}

func TestSearchProductNoMatchIsSuccess(t *testing.T) {
	t.Parallel()

	res := newTestExecutor().Execute(OpSearchProduct, Input{Query: "cheeseburger"}, cartx.New())
	if !res.Success {
		t.Fatal("zero matches must still be a success")
	}
	out := res.Payload.(SearchOutput)
	if out.ResultCount != 0 || len(out.Products) != 0 {
		t.Fatalf("expected empty result, got %+v", out)
	}
}

func TestAddToCartUnknownItem(t *testing.T) {
	t.Parallel()

	c := cartx.New()
	res := newTestExecutor().Execute(OpAddToCart, Input{ProductID: "unicorn-stew"}, c)
	if res.Success {
		t.Fatal("expected structured failure")
	}
	if res.Payload != nil {
		t.Fatal("failure must carry no payload")
	}
	if !strings.Contains(res.Message, "unicorn-stew") {
		t.Fatalf("message should name the item: %s", res.Message)
	}
	if c.UnitCount() != 0 {
		t.Fatal("failed add must not touch the cart")
	}
}

func TestAddToCartAccumulatesAndRecommends(t *testing.T) {
	t.Parallel()

	e := newTestExecutor()
	c := cartx.New()

	res := e.Execute(OpAddToCart, Input{ProductID: "kung-pao-chicken", Quantity: 2}, c)
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Message)
	}
	out := res.Payload.(AddOutput)
	if out.CartSize != 2 {
		t.Fatalf("cartSize = %d, want 2", out.CartSize)
	}
	if len(out.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(out.Recommendations))
	}
	// First two pairings of kung-pao-chicken, in listed order.
	if out.Recommendations[0].ID != "fried-rice" || out.Recommendations[1].ID != "hot-sour-soup" {
		t.Fatalf("unexpected recommendations: %+v", out.Recommendations)
	}

	res = e.Execute(OpAddToCart, Input{ProductID: "kung-pao-chicken", Quantity: 1}, c)
	out = res.Payload.(AddOutput)
	if out.CartSize != 3 {
		t.Fatalf("cartSize after second add = %d, want 3", out.CartSize)
	}
	if rows := c.Items(); len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	c := cartx.New()
	res := newTestExecutor().ExecuteNamed("add_to_cart", map[string]any{"product_id": "spring-rolls"}, c)
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Message)
	}
	if c.UnitCount() != 1 {
		t.Fatalf("unit count = %d, want 1", c.UnitCount())
	}
}

func TestRemoveFromCartMissingItemLeavesCartUnchanged(t *testing.T) {
	t.Parallel()

	e := newTestExecutor()
	c := cartx.New()
	e.Execute(OpAddToCart, Input{ProductID: "mapo-tofu", Quantity: 2}, c)

	res := e.Execute(OpRemoveFromCart, Input{ProductID: "peking-duck"}, c)
	if res.Success {
		t.Fatal("expected structured failure")
	}
	rows := c.Items()
	if len(rows) != 1 || rows[0].MenuItem.ID != "mapo-tofu" || rows[0].Quantity != 2 {
		t.Fatalf("cart changed after failed removal: %+v", rows)
	}
}

func TestRemoveFromCartDropsWholeRow(t *testing.T) {
	t.Parallel()

	e := newTestExecutor()
	c := cartx.New()
	e.Execute(OpAddToCart, Input{ProductID: "spring-rolls", Quantity: 3}, c)

	res := e.Execute(OpRemoveFromCart, Input{ProductID: "spring-rolls"}, c)
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Message)
	}
	out := res.Payload.(RemoveOutput)
	if out.CartSize != 0 {
		t.Fatalf("cartSize = %d, want 0", out.CartSize)
	}
}

func TestGetCartComputesLineTotals(t *testing.T) {
	t.Parallel()

	e := newTestExecutor()
	c := cartx.New()
	e.Execute(OpAddToCart, Input{ProductID: "spring-rolls", Quantity: 2}, c)

	res := e.Execute(OpGetCart, Input{}, c)
	out := res.Payload.(CartOutput)
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(out.Items))
	}
	if out.Items[0].LineTotal != 15.98 {
		t.Fatalf("lineTotal = %v, want 15.98", out.Items[0].LineTotal)
	}
	if out.ItemCount != 2 {
		t.Fatalf("itemCount = %d, want 2", out.ItemCount)
	}
}

func TestCalculateOrderTotalKnownScenario(t *testing.T) {
	t.Parallel()

	e := newTestExecutor()
	c := cartx.New()
	e.Execute(OpAddToCart, Input{ProductID: "kung-pao-chicken", Quantity: 1}, c)
	e.Execute(OpAddToCart, Input{ProductID: "spring-rolls", Quantity: 2}, c)

	res := e.Execute(OpCalculateOrderTotal, Input{}, c)
	out := res.Payload.(TotalOutput)
	if out.Subtotal != 31.97 || out.Tax != 2.84 || out.Total != 34.81 {
		t.Fatalf("totals = %v/%v/%v, want 31.97/2.84/34.81", out.Subtotal, out.Tax, out.Total)
	}
	if out.TaxRate != "8.875%" {
		t.Fatalf("taxRate = %s", out.TaxRate)
	}
	if out.Currency != "USD" {
		t.Fatalf("currency = %s", out.Currency)
	}
}

func TestCalculateOrderTotalEmptyCart(t *testing.T) {
	t.Parallel()

	res := newTestExecutor().Execute(OpCalculateOrderTotal, Input{}, cartx.New())
	if !res.Success {
		t.Fatal("empty cart total must succeed")
	}
	out := res.Payload.(TotalOutput)
	if out.Subtotal != 0 || out.Tax != 0 || out.Total != 0 || out.ItemCount != 0 {
		t.Fatalf("expected zero totals, got %+v", out)
	}
}

func TestExecuteNamedUnknownTool(t *testing.T) {
	t.Parallel()

	res := newTestExecutor().ExecuteNamed("order_pizza", map[string]any{}, cartx.New())
	if res.Success {
		t.Fatal("unknown tool must be a structured failure")
	}
	if !strings.Contains(res.Message, "unknown tool") {
		t.Fatalf("unexpected message: %s", res.Message)
	}
}

func TestExecuteNamedParsesJSONNumbers(t *testing.T) {
	t.Parallel()

	c := cartx.New()
	res := newTestExecutor().ExecuteNamed("add_to_cart", map[string]any{
		"product_id": "fried-rice",
		"quantity":   float64(3), // JSON numbers decode as float64
	}, c)
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Message)
	}
	if c.UnitCount() != 3 {
		t.Fatalf("unit count = %d, want 3", c.UnitCount())
	}
}

func TestSummaryJSONIncludesSuccessOnMutations(t *testing.T) {
	t.Parallel()

	e := newTestExecutor()
	c := cartx.New()
	res := e.Execute(OpAddToCart, Input{ProductID: "spring-rolls"}, c)
	s := res.SummaryJSON()
	if !strings.Contains(s, `"success":true`) {
		t.Fatalf("expected success flag in %s", s)
	}
	if !strings.Contains(s, `"cartSize":1`) {
		t.Fatalf("expected cartSize in %s", s)
	}

	fail := e.Execute(OpAddToCart, Input{ProductID: "nope"}, c)
	s = fail.SummaryJSON()
	if !strings.Contains(s, `"success":false`) {
		t.Fatalf("expected failure flag in %s", s)
	}
}
