// Package tool implements the deterministic tool execution layer: five named
// operations over one session cart and the read-only menu catalog. Expected
// domain conditions (unknown item, empty cart, unknown tool name) are
// structured results, never errors.
package tool

// Op enumerates the tool operations. The string values are part of the wire
// contract with the reasoning capability and must not change.
type Op string

const (
	OpSearchProduct       Op = "search_product"
	OpAddToCart           Op = "add_to_cart"
	OpRemoveFromCart      Op = "remove_from_cart"
	OpGetCart             Op = "get_cart"
	OpCalculateOrderTotal Op = "calculate_order_total"
)

var ops = []Op{
	OpSearchProduct,
	OpAddToCart,
	OpRemoveFromCart,
	OpGetCart,
	OpCalculateOrderTotal,
}

// Ops returns every operation in catalog order.
func Ops() []Op {
	out := make([]Op, len(ops))
	copy(out, ops)
	return out
}

// ParseOp maps a tool name from the reasoning capability onto the enum.
func ParseOp(name string) (Op, bool) {
	for _, op := range ops {
		if string(op) == name {
			return op, true
		}
	}
	return "", false
}
