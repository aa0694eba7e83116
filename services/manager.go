package services

import (
	"favour_crochet_server/database"
	"favour_crochet_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService    *CacheService
	HealthService   *HealthService
	CategoryService *CategoryService
	ProductService  *ProductService
	CustomerService *CustomerService
	OrderService    *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)

	return &ServiceManager{
		CacheService:    cacheService,
		HealthService:   NewHealthService(logger, db, cacheService),
		CategoryService: NewCategoryService(logger, db, cacheService),
		ProductService:  NewProductService(logger, db, cacheService),
		CustomerService: NewCustomerService(logger, db),
		OrderService:    NewOrderService(logger, db),
	}
}
