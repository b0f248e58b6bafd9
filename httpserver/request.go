package httpserver

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vilus/yandex-praktikum-searcher/movies"
)

// ListMoviesRequest mirrors the listing query string. Missing keys keep the
// documented defaults; present keys must satisfy the validate tags.
type ListMoviesRequest struct {
	Limit     int    `query:"limit" validate:"gt=0"`
	Page      int    `query:"page" validate:"gt=0"`
	Sort      string `query:"sort" validate:"oneof=id title imdb_rating"`
	SortOrder string `query:"sort_order" validate:"oneof=asc desc"`
	Search    string `query:"search"`
}

func (r ListMoviesRequest) ToSearchParams() movies.SearchParams {
	return movies.SearchParams{
		Limit:  r.Limit,
		Page:   r.Page,
		Sort:   movies.SortField(r.Sort),
		Order:  movies.SortOrder(r.SortOrder),
		Search: r.Search,
	}
}

// bindListMoviesRequest validates the raw query string into SearchParams.
// Integer-parse failures and constraint failures are accumulated into a
// single ValidationError so the response names every bad field.
func bindListMoviesRequest(c echo.Context) (movies.SearchParams, error) {
	req := ListMoviesRequest{
		Limit:     movies.DefaultLimit,
		Page:      movies.DefaultPage,
		Sort:      string(movies.SortByID),
		SortOrder: string(movies.OrderAsc),
	}

	var fields []FieldError
	params := c.QueryParams()

	if raw, ok := queryValue(params, "limit"); ok {
		if n, err := strconv.Atoi(raw); err != nil {
			fields = append(fields, newFieldError("limit", "value is not a valid integer", "type_error.integer"))
		} else {
			req.Limit = n
		}
	}
	if raw, ok := queryValue(params, "page"); ok {
		if n, err := strconv.Atoi(raw); err != nil {
			fields = append(fields, newFieldError("page", "value is not a valid integer", "type_error.integer"))
		} else {
			req.Page = n
		}
	}
	if raw, ok := queryValue(params, "sort"); ok {
		req.Sort = raw
	}
	if raw, ok := queryValue(params, "sort_order"); ok {
		req.SortOrder = raw
	}
	req.Search = params.Get("search")

	err := c.Validate(&req)
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		fields = append(fields, verr.Fields...)
	case err != nil:
		return movies.SearchParams{}, err
	}

	if len(fields) > 0 {
		return movies.SearchParams{}, &ValidationError{Fields: fields}
	}
	return req.ToSearchParams(), nil
}

func queryValue(params map[string][]string, key string) (string, bool) {
	values, ok := params[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
