// Package menu holds the read-only bilingual menu catalog. Items are unique
// and stable for the process lifetime; nothing in the engine mutates them.
package menu

import "strings"

type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameZh        string   `json:"nameZh"`
	Description   string   `json:"description"`
	DescriptionZh string   `json:"descriptionZh"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	SpiceLevel    int      `json:"spiceLevel"` // 0-3
	Allergens     []string `json:"allergens"`
	IsPopular     bool     `json:"isPopular"`
	Pairings      []string `json:"pairings"` // ids of suggested items, in order
}

// Catalog is the lookup surface consumed by the tool execution layer.
type Catalog interface {
	Items() []Item
	Search(query string) []Item
	Get(id string) (Item, bool)
	PairingsFor(id string) []Item
}

type memoryCatalog struct {
	items []Item
	byID  map[string]Item
}

// New builds an in-memory catalog preserving the given order.
func New(items []Item) Catalog {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &memoryCatalog{items: items, byID: byID}
}

// NewStatic returns the embedded restaurant menu.
func NewStatic() Catalog {
	return New(menuItems)
}

func (c *memoryCatalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Search matches a case-insensitive substring of the query against id, both
// names, both descriptions, and category. An empty query matches everything.
// Catalog order is preserved.
func (c *memoryCatalog) Search(query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Items()
	}

	var matches []Item
	for _, it := range c.items {
		searchable := strings.ToLower(strings.Join([]string{
			it.ID,
			it.Name,
			it.NameZh,
			it.Description,
			it.DescriptionZh,
			it.Category,
		}, " "))
		if strings.Contains(searchable, q) {
			matches = append(matches, it)
		}
	}
	return matches
}

func (c *memoryCatalog) Get(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// PairingsFor resolves an item's pairing ids in listed order, skipping any
// id that is not on the menu.
func (c *memoryCatalog) PairingsFor(id string) []Item {
	it, ok := c.byID[id]
	if !ok {
		return nil
	}
	out := make([]Item, 0, len(it.Pairings))
	for _, pid := range it.Pairings {
		if paired, ok := c.byID[pid]; ok {
			out = append(out, paired)
		}
	}
	return out
}
