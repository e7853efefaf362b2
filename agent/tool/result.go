package tool

import "encoding/json"

// Result is the outcome of one tool execution. Success carries exactly one
// payload variant matching Op; failure carries a human-readable message and
// no payload.
type Result struct {
	Op      Op
	Success bool
	Message string
	Payload Payload
}

// Payload is a closed union, one variant per operation, so the bridge and
// orchestrator can switch exhaustively instead of probing optional fields.
type Payload interface {
	isToolPayload()
}

// ProductView is the renderer-facing projection of a menu item.
type ProductView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameZh      string   `json:"nameZh"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	SpiceLevel  int      `json:"spiceLevel"`
	Allergens   []string `json:"allergens"`
	IsPopular   bool     `json:"isPopular"`
}

// RecommendationView is the short pairing projection on add results.
type RecommendationView struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	NameZh string  `json:"nameZh"`
	Price  float64 `json:"price"`
}

// ItemView is the affected item on cart mutations.
type ItemView struct {
	Name     string  `json:"name"`
	NameZh   string  `json:"nameZh"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

// LineView is one receipt line.
type LineView struct {
	Name      string  `json:"name"`
	NameZh    string  `json:"nameZh"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type SearchOutput struct {
	Products    []ProductView `json:"products"`
	ResultCount int           `json:"resultCount"`
	Query       string        `json:"query"`
}

type AddOutput struct {
	Item            ItemView             `json:"item"`
	CartSize        int                  `json:"cartSize"`
	Recommendations []RecommendationView `json:"recommendations"`
}

type RemoveOutput struct {
	Item     ItemView `json:"item"`
	CartSize int      `json:"cartSize"`
}

type CartOutput struct {
	Items     []LineView `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
}

type TotalOutput struct {
	Items     []LineView `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	TaxRate   string     `json:"taxRate"`
	Total     float64    `json:"total"`
	Currency  string     `json:"currency"`
}

func (SearchOutput) isToolPayload() {}
func (AddOutput) isToolPayload()    {}
func (RemoveOutput) isToolPayload() {}
func (CartOutput) isToolPayload()   {}
func (TotalOutput) isToolPayload()  {}

// SummaryJSON flattens the result into the JSON object fed back to the
// reasoning capability as a synthetic assistant turn.
func (r Result) SummaryJSON() string {
	m := map[string]any{}
	if r.Payload != nil {
		if b, err := json.Marshal(r.Payload); err == nil {
			_ = json.Unmarshal(b, &m)
		}
	}
	if !r.Success || r.Op == OpAddToCart || r.Op == OpRemoveFromCart {
		m["success"] = r.Success
	}
	if r.Message != "" {
		m["message"] = r.Message
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}
