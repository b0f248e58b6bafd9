package movies

import "fmt"

// Query is the engine-native descriptor compiled from SearchParams. It is
// built once per request and handed to the search gateway.
type Query struct {
	// Match is the optional full-text clause. Nil means match all documents
	// and rely on Sort/From/Size alone.
	Match *MatchClause

	// Source lists the document fields to project into the result.
	Source []string

	From int
	Size int

	// Sort is the engine sort expression, "<field>:<order>".
	Sort string
}

// MatchClause is a weighted multi-field full-text match.
type MatchClause struct {
	Query     string
	Fuzziness string
	Fields    []string
}

// searchFields are the weighted targets of the full-text clause,
// highest weight first.
var searchFields = []string{
	"title^5",
	"description^4",
	"genre^3",
	"actors_names^3",
	"writers_names^2",
	"director",
}

// summaryFields is the projection consumed by MovieSummary.
var summaryFields = []string{"id", "title", "imdb_rating"}

// sortFieldAliases remaps sort fields to their engine counterparts.
// Full-text indexed fields sort on the untokenized raw variant; anything
// not listed passes through unchanged.
var sortFieldAliases = map[SortField]string{
	SortByTitle: "title.raw",
}

// Compile deterministically translates validated search parameters into a
// Query. It is total over valid SearchParams and performs no I/O.
func Compile(p SearchParams) Query {
	q := Query{
		Source: summaryFields,
		From:   (p.Page - 1) * p.Limit,
		Size:   p.Limit,
		Sort:   fmt.Sprintf("%s:%s", engineSortField(p.Sort), p.Order),
	}

	if p.Search != "" {
		q.Match = &MatchClause{
			Query:     p.Search,
			Fuzziness: "AUTO",
			Fields:    searchFields,
		}
	}

	return q
}

func engineSortField(f SortField) string {
	if alias, ok := sortFieldAliases[f]; ok {
		return alias
	}
	return string(f)
}
