package movies

import (
	"encoding/json"

	"github.com/vilus/yandex-praktikum-searcher/errs"
)

var ErrNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")

// MovieSummary is the short listing shape. Its field set matches the
// projection requested from the search engine exactly.
type MovieSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	IMDBRating *float64 `json:"imdb_rating"`
}

// Actor is a cast member reference with a numeric identifier.
type Actor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is the full detail shape returned by a single-document lookup.
// Writers, genre and director are passed through from the index verbatim;
// their shape is owned by the ingestion pipeline, not by this service.
type Movie struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IMDBRating  *float64        `json:"imdb_rating"`
	Writers     json.RawMessage `json:"writers"`
	Actors      []Actor         `json:"actors"`
	Genre       json.RawMessage `json:"genre"`
	Director    json.RawMessage `json:"director"`
}
