package orders

import (
	"favour_crochet_server/api/health"
	"favour_crochet_server/api/middleware"
	"favour_crochet_server/handling"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateOrder handles POST /orders
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		handling.HandleError(lib.ErrMissingToken, "", orm.logger, w)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.CreateOrderRequest](r)
	if err != nil {
		handling.HandleError(err, "", orm.logger, w)
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), claims.Sub, req)
	if err != nil {
		handling.HandleError(err, "error.orders.failedToCreate", orm.logger, w)
		return
	}
	health.OrdersCreated.Inc()

	orm.logger.Info("Order placed",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("total", order.TotalAmount.StringFixed(2)),
	)
	gecho.Success(w,
		gecho.WithMessage("success.orders.created"),
		gecho.WithData(views.NewOrderView(order, claims)),
		gecho.Send(),
	)
}
