package movies

// SortField enumerates the fields a listing may be ordered by.
type SortField string

const (
	SortByID     SortField = "id"
	SortByTitle  SortField = "title"
	SortByRating SortField = "imdb_rating"
)

// SortOrder enumerates sort directions.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	DefaultLimit = 50
	DefaultPage  = 1
)

// SearchParams is the validated input of a listing search. An empty Search
// means "no full-text filter": the listing returns all documents in sort
// order. Instances are built once per request and never mutated.
type SearchParams struct {
	Limit  int
	Page   int
	Sort   SortField
	Order  SortOrder
	Search string
}

// DefaultSearchParams returns the parameter set used when the query string
// is empty.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		Limit: DefaultLimit,
		Page:  DefaultPage,
		Sort:  SortByID,
		Order: OrderAsc,
	}
}
