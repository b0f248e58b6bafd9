package elasticsearch

import (
	"encoding/json"
	"strconv"

	"github.com/vilus/yandex-praktikum-searcher/errs"
	"github.com/vilus/yandex-praktikum-searcher/movies"
)

// Projection of raw index documents into the public response shapes. The
// mapping is total over well-formed documents; anything else fails the
// whole document rather than emitting placeholders or partial lists.

func errMalformed(format string, args ...interface{}) *errs.Error {
	return errs.Errorf(errs.EINTERNAL, "malformed document: "+format, args...)
}

func summaryFromSource(src json.RawMessage) (movies.MovieSummary, error) {
	fields, err := documentFields(src)
	if err != nil {
		return movies.MovieSummary{}, err
	}

	var summary movies.MovieSummary
	if err := unmarshalRequired(fields, "id", &summary.ID); err != nil {
		return movies.MovieSummary{}, err
	}
	if err := unmarshalRequired(fields, "title", &summary.Title); err != nil {
		return movies.MovieSummary{}, err
	}
	if err := unmarshalRequired(fields, "imdb_rating", &summary.IMDBRating); err != nil {
		return movies.MovieSummary{}, err
	}
	return summary, nil
}

func detailFromSource(src json.RawMessage) (movies.Movie, error) {
	fields, err := documentFields(src)
	if err != nil {
		return movies.Movie{}, err
	}

	var movie movies.Movie
	for key, dst := range map[string]interface{}{
		"id":          &movie.ID,
		"title":       &movie.Title,
		"description": &movie.Description,
		"imdb_rating": &movie.IMDBRating,
		"writers":     &movie.Writers,
		"genre":       &movie.Genre,
		"director":    &movie.Director,
	} {
		if err := unmarshalRequired(fields, key, dst); err != nil {
			return movies.Movie{}, err
		}
	}

	raw, ok := fields["actors"]
	if !ok {
		return movies.Movie{}, errMalformed("missing field %q", "actors")
	}
	movie.Actors, err = actorsFromField(raw)
	if err != nil {
		return movies.Movie{}, err
	}

	return movie, nil
}

func documentFields(src json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(src, &fields); err != nil {
		return nil, errMalformed("not an object: %v", err)
	}
	return fields, nil
}

func unmarshalRequired(fields map[string]json.RawMessage, key string, dst interface{}) error {
	raw, ok := fields[key]
	if !ok {
		return errMalformed("missing field %q", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errMalformed("field %q: %v", key, err)
	}
	return nil
}

// actorsFromField decodes the actors list, coercing each identifier to an
// integer. The index stores ids as either numbers or numeric strings.
func actorsFromField(raw json.RawMessage) ([]movies.Actor, error) {
	var rawActors []struct {
		ID   json.RawMessage `json:"id"`
		Name string          `json:"name"`
	}
	if err := json.Unmarshal(raw, &rawActors); err != nil {
		return nil, errMalformed("field %q: %v", "actors", err)
	}

	actors := make([]movies.Actor, len(rawActors))
	for i, a := range rawActors {
		id, err := actorID(a.ID)
		if err != nil {
			return nil, err
		}
		actors[i] = movies.Actor{ID: id, Name: a.Name}
	}
	return actors, nil
}

func actorID(raw json.RawMessage) (int, error) {
	var id int
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		id, err := strconv.Atoi(s)
		if err != nil {
			return 0, errMalformed("actor id %q is not an integer", s)
		}
		return id, nil
	}

	return 0, errMalformed("actor id %s is not an integer", string(raw))
}
