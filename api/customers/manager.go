package customers

import (
	"context"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CustomerService is the profile store used by these routes, scoped by user id.
type CustomerService interface {
	ListCustomers(ctx context.Context, userID uuid.UUID) ([]*tables.Customer, error)
	GetCustomer(ctx context.Context, userID, id uuid.UUID) (*tables.Customer, error)
	CreateCustomer(ctx context.Context, userID uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error)
	ReplaceCustomer(ctx context.Context, userID, id uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error)
	PatchCustomer(ctx context.Context, userID, id uuid.UUID, req *structs.CustomerPatchRequest) (*tables.Customer, error)
	DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error
}

type CustomerRoutesManager struct {
	logger          *gecho.Logger
	customerService CustomerService
	requireIdentity func(http.Handler) http.Handler
}

func NewCustomerRoutesManager(logger *gecho.Logger, customerService CustomerService, requireIdentity func(http.Handler) http.Handler) *CustomerRoutesManager {
	return &CustomerRoutesManager{
		logger:          logger,
		customerService: customerService,
		requireIdentity: requireIdentity,
	}
}

func (crm *CustomerRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Use(crm.requireIdentity)

		r.Get("/", crm.ListCustomers)
		r.Post("/", crm.CreateCustomer)
		r.Get("/{id}", crm.GetCustomer)
		r.Put("/{id}", crm.ReplaceCustomer)
		r.Patch("/{id}", crm.PatchCustomer)
		r.Delete("/{id}", crm.DeleteCustomer)
	})
}
