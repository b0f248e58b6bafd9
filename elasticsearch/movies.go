package elasticsearch

import (
	"context"
	"encoding/json"
	"net/http"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"

	"github.com/vilus/yandex-praktikum-searcher/errs"
	"github.com/vilus/yandex-praktikum-searcher/movies"
)

// MovieRepository implements movies.Repository on top of an Elasticsearch
// index.
type MovieRepository struct {
	es    *es.Client
	index string
}

func NewMovieRepository(client *es.Client, index string) *MovieRepository {
	return &MovieRepository{es: client, index: index}
}

func (r *MovieRepository) SearchMovies(ctx context.Context, q movies.Query) ([]movies.MovieSummary, error) {
	opts := []func(*esapi.SearchRequest){
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithFilterPath(filterPaths(q.Source)...),
		r.es.Search.WithFrom(q.From),
		r.es.Search.WithSize(q.Size),
		r.es.Search.WithSort(q.Sort),
	}
	if q.Match != nil {
		opts = append(opts, r.es.Search.WithBody(esutil.NewJSONReader(searchBody(q.Match))))
	}

	res, err := r.es.Search(opts...)
	if err != nil {
		return nil, errs.Errorf(errs.EUNAVAILABLE, "search engine unavailable: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errs.Errorf(errs.EINTERNAL, "search engine responded with %s", res.Status())
	}

	var envelope struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, errs.Errorf(errs.EINTERNAL, "decode search response: %v", err)
	}

	summaries := make([]movies.MovieSummary, 0, len(envelope.Hits.Hits))
	for _, hit := range envelope.Hits.Hits {
		summary, err := summaryFromSource(hit.Source)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id string) (movies.Movie, error) {
	res, err := r.es.Get(r.index, id, r.es.Get.WithContext(ctx))
	if err != nil {
		return movies.Movie{}, errs.Errorf(errs.EUNAVAILABLE, "search engine unavailable: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return movies.Movie{}, movies.ErrNotFound
	}
	if res.IsError() {
		return movies.Movie{}, errs.Errorf(errs.EINTERNAL, "search engine responded with %s", res.Status())
	}

	var envelope struct {
		Source json.RawMessage `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return movies.Movie{}, errs.Errorf(errs.EINTERNAL, "decode get response: %v", err)
	}

	return detailFromSource(envelope.Source)
}

// searchBody renders the optional full-text clause as a multi_match query.
func searchBody(m *movies.MatchClause) map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     m.Query,
				"fuzziness": m.Fuzziness,
				"fields":    m.Fields,
			},
		},
	}
}

// filterPaths restricts the response envelope to the projected source
// fields, bounding the listing payload regardless of document size.
func filterPaths(source []string) []string {
	paths := make([]string, len(source))
	for i, field := range source {
		paths[i] = "hits.hits._source." + field
	}
	return paths
}
