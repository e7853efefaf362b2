package menu

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type menuRow struct {
	bun.BaseModel `bun:"table:menu_items,alias:mi"`

	ID            string   `bun:"id,pk"`
	Name          string   `bun:"name"`
	NameZh        string   `bun:"name_zh"`
	Description   string   `bun:"description"`
	DescriptionZh string   `bun:"description_zh"`
	Price         float64  `bun:"price"`
	Category      string   `bun:"category"`
	Image         string   `bun:"image"`
	SpiceLevel    int      `bun:"spice_level"`
	Allergens     []string `bun:"allergens,array"`
	IsPopular     bool     `bun:"is_popular"`
	Pairings      []string `bun:"pairings,array"`
	Position      int      `bun:"position"`
}

// NewPostgres loads the menu once from Postgres and serves it from memory.
// The catalog is read-only for the process lifetime, so there is no refresh
// path; restart to pick up menu changes.
func NewPostgres(ctx context.Context, dsn string) (Catalog, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	var rows []menuRow
	if err := db.NewSelect().Model(&rows).Order("position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("menu_items table is empty")
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, Item{
			ID:            r.ID,
			Name:          r.Name,
			NameZh:        r.NameZh,
			Description:   r.Description,
			DescriptionZh: r.DescriptionZh,
			Price:         r.Price,
			Category:      r.Category,
			Image:         r.Image,
			SpiceLevel:    r.SpiceLevel,
			Allergens:     r.Allergens,
			IsPopular:     r.IsPopular,
			Pairings:      r.Pairings,
		})
	}
	return New(items), nil
}
