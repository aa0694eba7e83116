package customers

import (
	"favour_crochet_server/api/middleware"
	"favour_crochet_server/handling"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// identity returns the caller's claims and the {id} parameter when the route has one.
func (crm *CustomerRoutesManager) identity(w http.ResponseWriter, r *http.Request, withID bool) (*structs.AuthClaims, uuid.UUID, bool) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		handling.HandleError(lib.ErrMissingToken, "", crm.logger, w)
		return nil, uuid.Nil, false
	}
	if !withID {
		return claims, uuid.Nil, true
	}
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return nil, uuid.Nil, false
	}
	return claims, id, true
}

// ListCustomers handles GET /customers; the result holds at most the caller's own profile.
func (crm *CustomerRoutesManager) ListCustomers(w http.ResponseWriter, r *http.Request) {
	claims, _, ok := crm.identity(w, r, false)
	if !ok {
		return
	}

	customers, err := crm.customerService.ListCustomers(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "error.customers.failedToFetch", crm.logger, w)
		return
	}

	results := make([]views.CustomerView, 0, len(customers))
	for _, c := range customers {
		results = append(results, views.NewCustomerView(c, claims))
	}

	gecho.Success(w,
		gecho.WithData(views.Page[views.CustomerView]{
			Count:    len(results),
			Page:     1,
			PageSize: len(results),
			Results:  results,
		}),
		gecho.Send(),
	)
}

// GetCustomer handles GET /customers/{id}
func (crm *CustomerRoutesManager) GetCustomer(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := crm.identity(w, r, true)
	if !ok {
		return
	}

	customer, err := crm.customerService.GetCustomer(r.Context(), claims.Sub, id)
	if err != nil {
		handling.HandleError(err, "error.customers.failedToFetchOne", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(views.NewCustomerView(customer, claims)),
		gecho.Send(),
	)
}

// CreateCustomer handles POST /customers
func (crm *CustomerRoutesManager) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	claims, _, ok := crm.identity(w, r, false)
	if !ok {
		return
	}
	req, err := lib.ExtractAndValidateBody[structs.CustomerRequest](r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	customer, err := crm.customerService.CreateCustomer(r.Context(), claims.Sub, req)
	if err != nil {
		handling.HandleError(err, "error.customers.failedToCreate", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.customers.created"),
		gecho.WithData(views.NewCustomerView(customer, claims)),
		gecho.Send(),
	)
}

// ReplaceCustomer handles PUT /customers/{id}
func (crm *CustomerRoutesManager) ReplaceCustomer(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := crm.identity(w, r, true)
	if !ok {
		return
	}
	req, err := lib.ExtractAndValidateUpdateBody[structs.CustomerRequest](r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	customer, err := crm.customerService.ReplaceCustomer(r.Context(), claims.Sub, id, req)
	if err != nil {
		handling.HandleError(err, "error.customers.failedToUpdate", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(views.NewCustomerView(customer, claims)),
		gecho.Send(),
	)
}

// PatchCustomer handles PATCH /customers/{id}
func (crm *CustomerRoutesManager) PatchCustomer(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := crm.identity(w, r, true)
	if !ok {
		return
	}
	req, err := lib.ExtractAndValidateUpdateBody[structs.CustomerPatchRequest](r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	customer, err := crm.customerService.PatchCustomer(r.Context(), claims.Sub, id, req)
	if err != nil {
		handling.HandleError(err, "error.customers.failedToUpdate", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(views.NewCustomerView(customer, claims)),
		gecho.Send(),
	)
}

// DeleteCustomer handles DELETE /customers/{id}
func (crm *CustomerRoutesManager) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := crm.identity(w, r, true)
	if !ok {
		return
	}

	if err := crm.customerService.DeleteCustomer(r.Context(), claims.Sub, id); err != nil {
		handling.HandleError(err, "error.customers.failedToDelete", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.customers.deleted"),
		gecho.Send(),
	)
}
