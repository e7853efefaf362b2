package tool

import contractx "github.com/ordervoice/kiosk-agent/agent/contract"

// Definitions returns the tool catalog submitted to the reasoning
// capability. Names and input shapes are a fixed contract: the model binds
// to them verbatim.
func Definitions() []contractx.ToolDefinition {
	return []contractx.ToolDefinition{
		{
			Name: string(OpSearchProduct),
			Description: "Search the restaurant menu for dishes matching a query. " +
				"Supports English and Chinese names. Returns matching menu items with prices, descriptions, and details.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query — dish name in English or Chinese, or category name",
					},
					"language": map[string]any{
						"type":        "string",
						"enum":        []string{"en", "zh", "auto"},
						"description": "Language hint for the query. Default: auto",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        string(OpAddToCart),
			Description: "Add a menu item to the customer's cart by product ID and quantity.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product_id": map[string]any{
						"type":        "string",
						"description": "The menu item ID to add",
					},
					"quantity": map[string]any{
						"type":        "number",
						"description": "How many to add. Default: 1",
					},
				},
				"required": []string{"product_id"},
			},
		},
		{
			Name:        string(OpRemoveFromCart),
			Description: "Remove a menu item from the customer's cart by product ID.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product_id": map[string]any{
						"type":        "string",
						"description": "The menu item ID to remove",
					},
				},
				"required": []string{"product_id"},
			},
		},
		{
			Name:        string(OpGetCart),
			Description: "Retrieve the current contents of the customer's shopping cart.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        string(OpCalculateOrderTotal),
			Description: "Calculate the order total including subtotal, tax (8.875%), and grand total.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}
