package database

import (
	"context"
	"fmt"

	"favour_crochet_server/structs/tables"

	"github.com/uptrace/bun"
)

// Migrate creates any missing tables, parents before children so foreign keys resolve.
func Migrate(ctx context.Context, db bun.IDB) error {
	models := []any{
		(*tables.Category)(nil),
		(*tables.Product)(nil),
		(*tables.Customer)(nil),
		(*tables.Order)(nil),
		(*tables.OrderItem)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	indexes := []struct {
		model   any
		name    string
		columns []string
	}{
		{(*tables.Product)(nil), "products_category_id_idx", []string{"category_id"}},
		{(*tables.Product)(nil), "products_active_created_idx", []string{"is_active", "created_at"}},
		{(*tables.Order)(nil), "orders_customer_id_idx", []string{"customer_id"}},
		{(*tables.OrderItem)(nil), "order_items_order_id_idx", []string{"order_id"}},
	}

	for _, idx := range indexes {
		if _, err := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			IfNotExists().
			Column(idx.columns...).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
