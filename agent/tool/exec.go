package tool

import (
	"fmt"

	"github.com/rs/zerolog/log"

	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	menux "github.com/ordervoice/kiosk-agent/agent/menu"
)

const maxRecommendations = 2

// Input carries the parsed arguments for any operation; each operation reads
// only the fields it declares in the catalog.
type Input struct {
	Query     string
	ProductID string
	Quantity  int
}

// Executor runs operations against one cart and the shared catalog.
type Executor struct {
	catalog menux.Catalog
	taxRate float64
}

func NewExecutor(catalog menux.Catalog, taxRate float64) *Executor {
	if taxRate <= 0 {
		taxRate = cartx.DefaultTaxRate
	}
	return &Executor{catalog: catalog, taxRate: taxRate}
}

// ExecuteNamed dispatches a tool call by its wire name with loosely typed
// arguments, as delivered by the reasoning capability. An unrecognized name
// is a structured failure, not an error: the orchestrator degrades to a
// generic reply with no card.
func (e *Executor) ExecuteNamed(name string, args map[string]any, c *cartx.Cart) Result {
	op, ok := ParseOp(name)
	if !ok {
		log.Warn().Str("tool", name).Msg("unknown tool requested")
		return Result{
			Op:      Op(name),
			Success: false,
			Message: fmt.Sprintf("unknown tool: %s", name),
		}
	}
	return e.Execute(op, parseInput(args), c)
}

// Execute runs one operation. The returned Result is always well-formed;
// only programming errors panic.
func (e *Executor) Execute(op Op, in Input, c *cartx.Cart) Result {
	switch op {
	case OpSearchProduct:
		return e.searchProduct(in)
	case OpAddToCart:
		return e.addToCart(in, c)
	case OpRemoveFromCart:
		return e.removeFromCart(in, c)
	case OpGetCart:
		return e.getCart(c)
	case OpCalculateOrderTotal:
		return e.calculateOrderTotal(c)
	default:
		return Result{
			Op:      op,
			Success: false,
			Message: fmt.Sprintf("unknown tool: %s", op),
		}
	}
}

// searchProduct never fails; an empty match list is a valid success.
func (e *Executor) searchProduct(in Input) Result {
	matches := e.catalog.Search(in.Query)
	products := make([]ProductView, 0, len(matches))
	for _, m := range matches {
		products = append(products, ProductView{
			ID:          m.ID,
			Name:        m.Name,
			NameZh:      m.NameZh,
			Price:       m.Price,
			Category:    m.Category,
			Description: m.Description,
			SpiceLevel:  m.SpiceLevel,
			Allergens:   m.Allergens,
			IsPopular:   m.IsPopular,
		})
	}
	return Result{
		Op:      OpSearchProduct,
		Success: true,
		Payload: SearchOutput{
			Products:    products,
			ResultCount: len(products),
			Query:       in.Query,
		},
	}
}

func (e *Executor) addToCart(in Input, c *cartx.Cart) Result {
	mi, ok := e.catalog.Get(in.ProductID)
	if !ok {
		return Result{
			Op:      OpAddToCart,
			Success: false,
			Message: fmt.Sprintf("Item %q not found on menu", in.ProductID),
		}
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}
	c.Add(mi, quantity)

	recs := make([]RecommendationView, 0, maxRecommendations)
	for _, r := range e.catalog.PairingsFor(mi.ID) {
		if r.ID == mi.ID {
			continue
		}
		recs = append(recs, RecommendationView{
			ID:     r.ID,
			Name:   r.Name,
			NameZh: r.NameZh,
			Price:  r.Price,
		})
		if len(recs) == maxRecommendations {
			break
		}
	}

	return Result{
		Op:      OpAddToCart,
		Success: true,
		Message: fmt.Sprintf("Added %dx %s (%s) to cart", quantity, mi.Name, mi.NameZh),
		Payload: AddOutput{
			Item: ItemView{
				Name:     mi.Name,
				NameZh:   mi.NameZh,
				Price:    mi.Price,
				Quantity: quantity,
			},
			CartSize:        c.UnitCount(),
			Recommendations: recs,
		},
	}
}

func (e *Executor) removeFromCart(in Input, c *cartx.Cart) Result {
	removed, ok := c.Remove(in.ProductID)
	if !ok {
		return Result{
			Op:      OpRemoveFromCart,
			Success: false,
			Message: fmt.Sprintf("Item %q is not in the cart", in.ProductID),
		}
	}

	mi := removed.MenuItem
	return Result{
		Op:      OpRemoveFromCart,
		Success: true,
		Message: fmt.Sprintf("Removed %s (%s) from cart", mi.Name, mi.NameZh),
		Payload: RemoveOutput{
			Item: ItemView{
				Name:   mi.Name,
				NameZh: mi.NameZh,
				Price:  mi.Price,
			},
			CartSize: c.UnitCount(),
		},
	}
}

func (e *Executor) getCart(c *cartx.Cart) Result {
	subtotal, tax, total := c.Totals(e.taxRate)
	return Result{
		Op:      OpGetCart,
		Success: true,
		Payload: CartOutput{
			Items:     cartLines(c),
			ItemCount: c.UnitCount(),
			Subtotal:  subtotal,
			Tax:       tax,
			Total:     total,
		},
	}
}

// calculateOrderTotal never fails; an empty cart yields zero totals.
func (e *Executor) calculateOrderTotal(c *cartx.Cart) Result {
	subtotal, tax, total := c.Totals(e.taxRate)
	return Result{
		Op:      OpCalculateOrderTotal,
		Success: true,
		Payload: TotalOutput{
			Items:     cartLines(c),
			ItemCount: c.UnitCount(),
			Subtotal:  subtotal,
			Tax:       tax,
			TaxRate:   fmt.Sprintf("%.3f%%", e.taxRate*100),
			Total:     total,
			Currency:  "USD",
		},
	}
}

func cartLines(c *cartx.Cart) []LineView {
	items := c.Items()
	lines := make([]LineView, 0, len(items))
	for _, it := range items {
		lines = append(lines, LineView{
			Name:      it.MenuItem.Name,
			NameZh:    it.MenuItem.NameZh,
			Price:     it.MenuItem.Price,
			Quantity:  it.Quantity,
			LineTotal: cartx.Round2(it.MenuItem.Price * float64(it.Quantity)),
		})
	}
	return lines
}

func parseInput(args map[string]any) Input {
	in := Input{}
	if q, ok := args["query"].(string); ok {
		in.Query = q
	}
	if id, ok := args["product_id"].(string); ok {
		in.ProductID = id
	}
	switch q := args["quantity"].(type) {
	case float64:
		in.Quantity = int(q)
	case int:
		in.Quantity = q
	}
	return in
}
