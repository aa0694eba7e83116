package services

import (
	"context"
	"errors"
	"favour_crochet_server/database"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CustomerService manages shop profiles. Every operation is scoped to the calling identity.
type CustomerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCustomerService(logger *gecho.Logger, db *database.DB) *CustomerService {
	return &CustomerService{logger: logger, db: db}
}

// customerForUser loads the profile owned by userID or returns lib.ErrNotFound.
func customerForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) (*tables.Customer, error) {
	customer := new(tables.Customer)
	err := database.WithRetry(ctx, func() error {
		return db.NewSelect().Model(customer).Where("cu.user_id = ?", userID).Limit(1).Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return customer, nil
}

// ListCustomers returns the caller's profile, if any, as a one element page.
func (cs *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID) ([]*tables.Customer, error) {
	customer, err := customerForUser(ctx, cs.db, userID)
	if errors.Is(err, lib.ErrNotFound) {
		return []*tables.Customer{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []*tables.Customer{customer}, nil
}

// GetCustomer returns the profile id when it belongs to userID.
func (cs *CustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*tables.Customer, error) {
	customer := new(tables.Customer)
	err := database.WithRetry(ctx, func() error {
		return cs.db.NewSelect().
			Model(customer).
			Where("cu.id = ?", id).
			Where("cu.user_id = ?", userID).
			Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return customer, nil
}

// CreateCustomer creates the caller's profile. An identity owns at most one.
func (cs *CustomerService) CreateCustomer(ctx context.Context, userID uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error) {
	customer := tables.NewCustomer(userID)
	applyCustomerRequest(customer, req)

	if _, err := cs.db.NewInsert().Model(customer).Exec(ctx); err != nil {
		err = lib.MapDBError(err)
		if !errors.Is(err, lib.ErrConflict) {
			cs.logger.Error("Failed to create customer", gecho.Field("user_id", userID), gecho.Field("error", err))
		}
		return nil, err
	}

	cs.logger.Info("Customer created", gecho.Field("id", customer.ID), gecho.Field("user_id", userID))
	return customer, nil
}

func applyCustomerRequest(c *tables.Customer, req *structs.CustomerRequest) {
	c.Phone = req.Phone
	c.Address = req.Address
	c.City = req.City
	c.Country = req.Country
	c.PostalCode = req.PostalCode
	c.DateOfBirth = req.DateOfBirth
	c.PreferredStyle = req.PreferredStyle
}

func applyCustomerPatch(c *tables.Customer, req *structs.CustomerPatchRequest) {
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.Country != nil {
		c.Country = *req.Country
	}
	if req.PostalCode != nil {
		c.PostalCode = *req.PostalCode
	}
	if req.DateOfBirth != nil {
		c.DateOfBirth = req.DateOfBirth
	}
	if req.PreferredStyle != nil {
		c.PreferredStyle = *req.PreferredStyle
	}
}

func (cs *CustomerService) ReplaceCustomer(ctx context.Context, userID, id uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error) {
	return cs.update(ctx, userID, id, func(c *tables.Customer) {
		applyCustomerRequest(c, req)
	})
}

func (cs *CustomerService) PatchCustomer(ctx context.Context, userID, id uuid.UUID, req *structs.CustomerPatchRequest) (*tables.Customer, error) {
	return cs.update(ctx, userID, id, func(c *tables.Customer) {
		applyCustomerPatch(c, req)
	})
}

func (cs *CustomerService) update(ctx context.Context, userID, id uuid.UUID, apply func(*tables.Customer)) (*tables.Customer, error) {
	customer, err := cs.GetCustomer(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	apply(customer)

	if _, err := cs.db.NewUpdate().Model(customer).WherePK().ExcludeColumn("user_id", "created_at").Exec(ctx); err != nil {
		return nil, lib.MapDBError(err)
	}
	return customer, nil
}

// DeleteCustomer removes the profile along with its orders.
func (cs *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	res, err := cs.db.NewDelete().
		Model((*tables.Customer)(nil)).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return lib.ErrNotFound
	}

	cs.logger.Info("Customer deleted", gecho.Field("id", id))
	return nil
}
