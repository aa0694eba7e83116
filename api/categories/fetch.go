package categories

import (
	"favour_crochet_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListCategories handles GET /categories
func (crm *CategoryRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := crm.categoryService.ListCategories(r.Context())
	if err != nil {
		handling.HandleError(err, "error.categories.failedToFetch", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cats),
		gecho.Send(),
	)
}

// GetCategory handles GET /categories/{id}
func (crm *CategoryRoutesManager) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	cat, err := crm.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		handling.HandleError(err, "error.categories.failedToFetchOne", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cat),
		gecho.Send(),
	)
}
