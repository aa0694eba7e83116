package products

import (
	"favour_crochet_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListProducts handles GET /products with filtering, ordering and pagination
func (prm *ProductRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	page, err := prm.productService.ListProducts(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetch", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// FeaturedProducts handles GET /products/featured
func (prm *ProductRoutesManager) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	products, err := prm.productService.FeaturedProducts(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetchFeatured", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(products),
		gecho.Send(),
	)
}

// AfricanStyles handles GET /products/african_styles
func (prm *ProductRoutesManager) AfricanStyles(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(prm.productService.AfricanStyles()),
		gecho.Send(),
	)
}

// ProductsByCategory handles GET /products/by_category
func (prm *ProductRoutesManager) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	groups, err := prm.productService.ProductsByCategory(r.Context(), opts)
	if err != nil {
		handling.HandleError(err, "error.products.failedToGroup", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(groups),
		gecho.Send(),
	)
}

// GetProduct handles GET /products/{id}
func (prm *ProductRoutesManager) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", prm.logger, w)
		return
	}

	product, err := prm.productService.GetProduct(r.Context(), id)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetchOne", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
