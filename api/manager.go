package api

import (
	"favour_crochet_server/api/categories"
	"favour_crochet_server/api/customers"
	"favour_crochet_server/api/debug"
	"favour_crochet_server/api/health"
	"favour_crochet_server/api/middleware"
	"favour_crochet_server/api/orders"
	"favour_crochet_server/api/products"
	"favour_crochet_server/services"
	"favour_crochet_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	categoryRoutes *categories.CategoryRoutesManager
	productRoutes  *products.ProductRoutesManager
	customerRoutes *customers.CustomerRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	healthRoutes   *health.HealthRoutesManager
	debugRoutes    *debug.DebugRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, mw *middleware.Middleware, svc *services.ServiceManager) *routerManager {
	return &routerManager{
		categoryRoutes: categories.NewCategoryRoutesManager(logger, svc.CategoryService, mw.CatalogWriteGate),
		productRoutes:  products.NewProductRoutesManager(logger, svc.ProductService, mw.CatalogWriteGate),
		customerRoutes: customers.NewCustomerRoutesManager(logger, svc.CustomerService, mw.RequireIdentity),
		orderRoutes:    orders.NewOrderRoutesManager(logger, svc.OrderService, mw.RequireIdentity),
		healthRoutes:   health.NewHealthRoutesManager(logger, svc.HealthService),
		debugRoutes:    debug.NewDebugRoutesManager(logger, svc.CacheService, cfg.Server.Environment != "production", mw.RequireAPIKey),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.categoryRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.customerRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
