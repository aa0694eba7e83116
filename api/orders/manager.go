package orders

import (
	"context"
	"favour_crochet_server/database"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderService is the order store used by these routes, scoped by user id.
type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *structs.CreateOrderRequest) (*tables.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*tables.Order, database.Pagination, error)
	GetOrder(ctx context.Context, userID, id uuid.UUID) (*tables.Order, error)
	UpdateOrder(ctx context.Context, userID, id uuid.UUID, req *structs.UpdateOrderRequest) (*tables.Order, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status structs.OrderStatus) (*tables.Order, error)
	DeleteOrder(ctx context.Context, userID, id uuid.UUID) error
}

type OrderRoutesManager struct {
	logger          *gecho.Logger
	orderService    OrderService
	requireIdentity func(http.Handler) http.Handler
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService OrderService, requireIdentity func(http.Handler) http.Handler) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:          logger,
		orderService:    orderService,
		requireIdentity: requireIdentity,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(orm.requireIdentity)

		r.Get("/", orm.ListOrders)
		r.Post("/", orm.CreateOrder)
		r.Get("/{id}", orm.GetOrder)
		r.Patch("/{id}", orm.UpdateOrder)
		r.Delete("/{id}", orm.DeleteOrder)
		r.Patch("/{id}/update_status", orm.UpdateStatus)
	})
}
