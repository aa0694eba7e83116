package products

import (
	"favour_crochet_server/handling"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateProduct handles POST /products
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), req)
	if err != nil {
		handling.HandleError(err, "error.products.failedToCreate", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

// ReplaceProduct handles PUT /products/{id}
func (prm *ProductRoutesManager) ReplaceProduct(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}
	req, err := lib.ExtractAndValidateUpdateBody[structs.ProductRequest](r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	product, err := prm.productService.ReplaceProduct(r.Context(), id, req)
	if err != nil {
		handling.HandleError(err, "error.products.failedToUpdate", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

// PatchProduct handles PATCH /products/{id}
func (prm *ProductRoutesManager) PatchProduct(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}
	req, err := lib.ExtractAndValidateUpdateBody[structs.ProductPatchRequest](r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	product, err := prm.productService.PatchProduct(r.Context(), id, req)
	if err != nil {
		handling.HandleError(err, "error.products.failedToUpdate", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /products/{id}; the product is deactivated, not removed.
func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	if err := prm.productService.DeleteProduct(r.Context(), id); err != nil {
		handling.HandleError(err, "error.products.failedToDelete", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.products.deleted"),
		gecho.Send(),
	)
}
