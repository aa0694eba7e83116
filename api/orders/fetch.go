package orders

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

// target returns the caller and the order id from the route.
func (orm *OrderRoutesManager) target(w http.ResponseWriter, r *http.Request) (*structs.AuthClaims, uuid.UUID, bool) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		handling.HandleError(lib.ErrMissingToken, "", orm.logger, w)
		return nil, uuid.Nil, false
	}
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", orm.logger, w)
		return nil, uuid.Nil, false
	}
	return claims, id, true
}

// ListOrders handles GET /orders
func (orm *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		handling.HandleError(lib.ErrMissingToken, "", orm.logger, w)
		return
	}

	page, pageSize, err := handling.ParsePage(r.URL.Query())
	if err != nil {
		handling.HandleError(err, "", orm.logger, w)
		return
	}

	orders, pagination, err := orm.orderService.ListOrders(r.Context(), claims.Sub, page, pageSize)
	if err != nil {
		handling.HandleError(err, "error.orders.failedToFetch", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(views.Page[views.OrderView]{
			Count:    pagination.Total,
			Page:     pagination.Page,
			PageSize: pagination.PageSize,
			Results:  views.NewOrderViews(orders, claims),
		}),
		gecho.Send(),
	)
}

// GetOrder handles GET /orders/{id}
func (orm *OrderRoutesManager) GetOrder(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := orm.target(w, r)
	if !ok {
		return
	}

	order, err := orm.orderService.GetOrder(r.Context(), claims.Sub, id)
	if err != nil {
		handling.HandleError(err, "error.orders.failedToFetchOne", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(views.NewOrderView(order, claims)),
		gecho.Send(),
	)
}
