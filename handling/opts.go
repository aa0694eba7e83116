package handling

import (
	"favour_crochet_server/lib"
	"favour_crochet_server/services"
	"favour_crochet_server/structs"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParsePage reads page and page_size. A malformed page is rejected; a malformed
// page_size falls back to the default and oversized ones are clamped later.
func ParsePage(query url.Values) (int, int, error) {
	page := 1
	if raw := query.Get("page"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 1 {
			return 0, 0, lib.NewValidationError("page", "must be a positive integer")
		}
		page = val
	}

	pageSize := 0
	if raw := query.Get("page_size"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			pageSize = val
		}
	}
	return page, pageSize, nil
}

func parseBool(query url.Values, name string) (*bool, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, lib.NewValidationError(name, "must be a boolean")
	}
	return &val, nil
}

func parseDecimal(query url.Values, name string) (*decimal.Decimal, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	val, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, lib.NewValidationError(name, "must be a number")
	}
	return &val, nil
}

func parseStyle(query url.Values, name string) (*structs.AfricanStyle, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	style := structs.AfricanStyle(raw)
	if !style.Valid() {
		return nil, lib.NewValidationError(name, "is not a valid choice")
	}
	return &style, nil
}

// ParseProductListOptions parses catalog query parameters. Invalid values yield a *lib.ValidationError.
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()
	opts := &services.ProductListOptions{}

	if len(query) == 0 {
		return opts, nil
	}

	var err error
	if opts.Page, opts.PageSize, err = ParsePage(query); err != nil {
		return nil, err
	}

	if raw := query.Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, lib.NewValidationError("category", "must be a valid UUID")
		}
		opts.Category = &id
	}

	if opts.AfricanStyle, err = parseStyle(query, "african_style"); err != nil {
		return nil, err
	}
	if opts.Style, err = parseStyle(query, "style"); err != nil {
		return nil, err
	}
	if opts.IsFeatured, err = parseBool(query, "is_featured"); err != nil {
		return nil, err
	}
	if opts.IsCustomOrder, err = parseBool(query, "is_custom_order"); err != nil {
		return nil, err
	}
	if opts.MinPrice, err = parseDecimal(query, "min_price"); err != nil {
		return nil, err
	}
	if opts.MaxPrice, err = parseDecimal(query, "max_price"); err != nil {
		return nil, err
	}

	// anything other than the literal "true" leaves the filter off
	opts.InStock = query.Get("in_stock") == "true"
	opts.Search = query.Get("search")
	opts.Ordering = services.ParseOrdering(query.Get("ordering"))

	return opts, nil
}

// ParseID reads the {id} route parameter. Malformed ids are reported as lib.ErrNotFound.
func ParseID(r *http.Request) (uuid.UUID, error) {
	id, err := lib.ParseUUIDParam(r, "id")
	if err != nil {
		return uuid.Nil, lib.ErrNotFound
	}
	return id, nil
}
