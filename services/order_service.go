package services

import (
	"context"
	"errors"
	"favour_crochet_server/database"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// OrderService places and manages orders. Every operation is scoped to the
// orders of the customer profile owned by the calling identity.
type OrderService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewOrderService(logger *gecho.Logger, db *database.DB) *OrderService {
	return &OrderService{logger: logger, db: db}
}

// errNoCustomer is returned when the caller has no profile to order under.
var errNoCustomer = lib.NewValidationError("customer", "create a customer profile before placing orders")

// orderQuery selects orders with customer and items (and their products) loaded.
func orderQuery(db bun.IDB, dest any) *bun.SelectQuery {
	return db.NewSelect().
		Model(dest).
		Relation("Customer").
		Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("oi.created_at ASC, oi.id ASC")
		}).
		Relation("Items.Product")
}

// priceLines resolves each requested line against the active catalog.
// Quantity defaults to 1 and unit price to the product's current price.
func priceLines(items []structs.OrderItemRequest, products map[uuid.UUID]*tables.Product) ([]PricedLine, error) {
	lines := make([]PricedLine, 0, len(items))
	for i, item := range items {
		product, ok := products[item.Product]
		if !ok {
			return nil, lib.NewValidationError(fmt.Sprintf("items[%d].product", i), "product does not exist or is no longer available")
		}

		line := PricedLine{UnitPrice: product.Price, Quantity: 1}
		if item.Quantity != nil {
			line.Quantity = *item.Quantity
		}
		if item.UnitPrice != nil {
			if err := validateMoney(fmt.Sprintf("items[%d].unit_price", i), *item.UnitPrice); err != nil {
				return nil, err
			}
			line.UnitPrice = *item.UnitPrice
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// buildOrder prices req against products and returns the order for customer with its items
// attached. Nothing is written.
func buildOrder(customer *tables.Customer, req *structs.CreateOrderRequest, products map[uuid.UUID]*tables.Product) (*tables.Order, []*tables.OrderItem, error) {
	lines, err := priceLines(req.Items, products)
	if err != nil {
		return nil, nil, err
	}
	totals, err := CalculateTotals(lines)
	if err != nil {
		return nil, nil, err
	}

	order := tables.NewOrder(customer.ID)
	order.Customer = customer
	order.Subtotal = totals.Subtotal
	order.TaxAmount = totals.TaxAmount
	order.ShippingCost = totals.ShippingCost
	order.TotalAmount = totals.TotalAmount
	order.ShippingAddress = req.ShippingAddress
	order.ShippingCity = req.ShippingCity
	order.ShippingCountry = req.ShippingCountry
	order.ShippingPostalCode = req.ShippingPostalCode
	order.SpecialInstructions = req.SpecialInstructions

	items := make([]*tables.OrderItem, 0, len(lines))
	for i, line := range lines {
		reqItem := req.Items[i]
		item := tables.NewOrderItem(order.ID, reqItem.Product, line.Quantity, line.UnitPrice)
		item.Product = products[reqItem.Product]
		item.Size = reqItem.Size
		item.Color = reqItem.Color
		item.CustomNotes = reqItem.CustomNotes
		if reqItem.CustomMeasurements != nil {
			item.CustomMeasurements = reqItem.CustomMeasurements
		}
		items = append(items, item)
	}
	order.Items = items
	return order, items, nil
}

// CreateOrder places an order for the caller. The order and all of its items are
// stored in one transaction or not at all. Stock levels are not touched.
func (os *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *structs.CreateOrderRequest) (*tables.Order, error) {
	if len(req.Items) == 0 {
		return nil, lib.NewValidationError("items", "must contain at least one item")
	}

	var order *tables.Order
	err := database.Transaction(ctx, os.db, func(ctx context.Context, tx bun.Tx) error {
		customer, err := customerForUser(ctx, tx, userID)
		if errors.Is(err, lib.ErrNotFound) {
			return errNoCustomer
		}
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, 0, len(req.Items))
		for _, item := range req.Items {
			ids = append(ids, item.Product)
		}
		var found []*tables.Product
		err = tx.NewSelect().
			Model(&found).
			Where("p.id IN (?)", bun.In(ids)).
			Where("p.is_active = TRUE").
			Scan(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch order products: %w", err)
		}
		products := make(map[uuid.UUID]*tables.Product, len(found))
		for _, p := range found {
			products[p.ID] = p
		}

		var items []*tables.OrderItem
		order, items, err = buildOrder(customer, req, products)
		if err != nil {
			return err
		}

		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		err = lib.MapDBError(err)
		var ve *lib.ValidationError
		if !errors.As(err, &ve) {
			os.logger.Error("Failed to create order", gecho.Field("user_id", userID), gecho.Field("error", err))
		}
		return nil, err
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", order.ID),
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("items", len(order.Items)),
		gecho.Field("total", order.TotalAmount.StringFixed(2)),
	)
	return order, nil
}

// ListOrders pages through the caller's orders, newest first.
func (os *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*tables.Order, database.Pagination, error) {
	customer, err := customerForUser(ctx, os.db, userID)
	if errors.Is(err, lib.ErrNotFound) {
		page, pageSize = database.NormalizePage(page, pageSize)
		return []*tables.Order{}, database.Pagination{Page: page, PageSize: pageSize}, nil
	}
	if err != nil {
		return nil, database.Pagination{}, err
	}

	var orders []*tables.Order
	q := orderQuery(os.db, &orders).
		Where("o.customer_id = ?", customer.ID).
		OrderExpr("o.created_at DESC, o.id ASC")

	pagination, err := database.Paginate(ctx, q, page, pageSize)
	if err != nil {
		os.logger.Error("Failed to list orders", gecho.Field("user_id", userID), gecho.Field("error", err))
		return nil, database.Pagination{}, err
	}
	return orders, pagination, nil
}

// GetOrder returns the order when it belongs to the caller, lib.ErrNotFound otherwise.
func (os *OrderService) GetOrder(ctx context.Context, userID, id uuid.UUID) (*tables.Order, error) {
	return os.loadOwned(ctx, os.db, userID, id)
}

func (os *OrderService) loadOwned(ctx context.Context, db bun.IDB, userID, id uuid.UUID) (*tables.Order, error) {
	order := new(tables.Order)
	err := database.WithRetry(ctx, func() error {
		return orderQuery(db, order).
			Where("o.id = ?", id).
			Where("customer.user_id = ?", userID).
			Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return order, nil
}

// UpdateOrder edits shipping details, instructions and the estimated completion date.
// Pricing, items and status are not editable here.
func (os *OrderService) UpdateOrder(ctx context.Context, userID, id uuid.UUID, req *structs.UpdateOrderRequest) (*tables.Order, error) {
	order, err := os.loadOwned(ctx, os.db, userID, id)
	if err != nil {
		return nil, err
	}

	columns := []string{"updated_at"}
	if req.ShippingAddress != nil {
		order.ShippingAddress = *req.ShippingAddress
		columns = append(columns, "shipping_address")
	}
	if req.ShippingCity != nil {
		order.ShippingCity = *req.ShippingCity
		columns = append(columns, "shipping_city")
	}
	if req.ShippingCountry != nil {
		order.ShippingCountry = *req.ShippingCountry
		columns = append(columns, "shipping_country")
	}
	if req.ShippingPostalCode != nil {
		order.ShippingPostalCode = *req.ShippingPostalCode
		columns = append(columns, "shipping_postal_code")
	}
	if req.SpecialInstructions != nil {
		order.SpecialInstructions = *req.SpecialInstructions
		columns = append(columns, "special_instructions")
	}
	if req.EstimatedCompletionDate != nil {
		order.EstimatedCompletionDate = req.EstimatedCompletionDate
		columns = append(columns, "estimated_completion_date")
	}
	order.UpdatedAt = time.Now().UTC()

	if _, err := os.db.NewUpdate().Model(order).Column(columns...).WherePK().Exec(ctx); err != nil {
		return nil, lib.MapDBError(err)
	}
	return order, nil
}

// UpdateStatus moves an order to any known status. Transitions are not constrained.
func (os *OrderService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status structs.OrderStatus) (*tables.Order, error) {
	if !status.Valid() {
		return nil, lib.NewValidationError("status", "is not a valid choice")
	}

	order, err := os.loadOwned(ctx, os.db, userID, id)
	if err != nil {
		return nil, err
	}
	previous := order.Status

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if _, err := os.db.NewUpdate().Model(order).Column("status", "updated_at").WherePK().Exec(ctx); err != nil {
		return nil, lib.MapDBError(err)
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", order.ID),
		gecho.Field("old_status", previous),
		gecho.Field("new_status", status),
	)
	return order, nil
}

// DeleteOrder removes an owned order and its items.
func (os *OrderService) DeleteOrder(ctx context.Context, userID, id uuid.UUID) error {
	return database.Transaction(ctx, os.db, func(ctx context.Context, tx bun.Tx) error {
		order, err := os.loadOwned(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		if _, err := tx.NewDelete().Model((*tables.OrderItem)(nil)).Where("order_id = ?", order.ID).Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}
		if _, err := tx.NewDelete().Model((*tables.Order)(nil)).Where("id = ?", order.ID).Exec(ctx); err != nil {
			return lib.MapDBError(err)
		}
		os.logger.Info("Order deleted", gecho.Field("order_id", order.ID))
		return nil
	})
}
