package orders

import (
	"favour_crochet_server/handling"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"favour_crochet_server/structs/views"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// UpdateOrder handles PATCH /orders/{id}
func (orm *OrderRoutesManager) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := orm.target(w, r)
	if !ok {
		return
	}
	req, err := lib.ExtractAndValidateUpdateBody[structs.UpdateOrderRequest](r)
	if err != nil {
		handling.HandleError(err, "", orm.logger, w)
		return
	}

	order, err := orm.orderService.UpdateOrder(r.Context(), claims.Sub, id, req)
	if err != nil {
		handling.HandleError(err, "error.orders.failedToUpdate", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(views.NewOrderView(order, claims)),
		gecho.Send(),
	)
}

// UpdateStatus handles PATCH /orders/{id}/update_status
func (orm *OrderRoutesManager) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := orm.target(w, r)
	if !ok {
		return
	}
	req, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		handling.HandleError(err, "", orm.logger, w)
		return
	}

	order, err := orm.orderService.UpdateStatus(r.Context(), claims.Sub, id, req.Status)
	if err != nil {
		handling.HandleError(err, "error.orders.failedToUpdateStatus", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.orders.statusUpdated"),
		gecho.WithData(views.NewOrderView(order, claims)),
		gecho.Send(),
	)
}

// DeleteOrder handles DELETE /orders/{id}
func (orm *OrderRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	claims, id, ok := orm.target(w, r)
	if !ok {
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), claims.Sub, id); err != nil {
		handling.HandleError(err, "error.orders.failedToDelete", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.orders.deleted"),
		gecho.Send(),
	)
}
