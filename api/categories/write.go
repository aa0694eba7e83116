package categories

import (
	"favour_crochet_server/handling"
	"favour_crochet_server/lib"
	"favour_crochet_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateCategory handles POST /categories
func (crm *CategoryRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	cat, err := crm.categoryService.CreateCategory(r.Context(), req)
	if err != nil {
		handling.HandleError(err, "error.categories.failedToCreate", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.categories.created"),
		gecho.WithData(cat),
		gecho.Send(),
	)
}

// ReplaceCategory handles PUT /categories/{id}
func (crm *CategoryRoutesManager) ReplaceCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}
	req, err := lib.ExtractAndValidateUpdateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	cat, err := crm.categoryService.ReplaceCategory(r.Context(), id, req)
	if err != nil {
		handling.HandleError(err, "error.categories.failedToUpdate", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cat),
		gecho.Send(),
	)
}

// PatchCategory handles PATCH /categories/{id}
func (crm *CategoryRoutesManager) PatchCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}
	req, err := lib.ExtractAndValidateUpdateBody[structs.CategoryPatchRequest](r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	cat, err := crm.categoryService.PatchCategory(r.Context(), id, req)
	if err != nil {
		handling.HandleError(err, "error.categories.failedToUpdate", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cat),
		gecho.Send(),
	)
}

// DeleteCategory handles DELETE /categories/{id}
func (crm *CategoryRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseID(r)
	if err != nil {
		handling.HandleError(err, "", crm.logger, w)
		return
	}

	if err := crm.categoryService.DeleteCategory(r.Context(), id); err != nil {
		handling.HandleError(err, "error.categories.failedToDelete", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.categories.deleted"),
		gecho.Send(),
	)
}
