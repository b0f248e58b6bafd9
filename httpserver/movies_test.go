package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vilus/yandex-praktikum-searcher/errs"
	"github.com/vilus/yandex-praktikum-searcher/httpserver"
	"github.com/vilus/yandex-praktikum-searcher/movies"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) SearchMovies(ctx context.Context, params movies.SearchParams) ([]movies.MovieSummary, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]movies.MovieSummary), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id string) (movies.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movies.Movie), args.Error(1)
}

func newTestServer(t *testing.T, svc movies.Service) *httpserver.Server {
	t.Helper()

	server, err := httpserver.New(httpserver.WithMovieService(svc))
	require.NoError(t, err)
	return server
}

func doRequest(server *httpserver.Server, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func decodeDetail(t *testing.T, recorder *httptest.ResponseRecorder) []httpserver.FieldError {
	t.Helper()

	var body struct {
		Detail []httpserver.FieldError `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Detail
}

func TestListMovies(t *testing.T) {
	t.Run("should return 200 with a bare array of summaries", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		expectedParams := movies.SearchParams{
			Limit: 2, Page: 1,
			Sort: movies.SortByTitle, Order: movies.OrderDesc,
			Search: "matrix",
		}
		r1, r2 := 7.2, 8.7
		results := []movies.MovieSummary{
			{ID: "m2", Title: "The Matrix Reloaded", IMDBRating: &r1},
			{ID: "m1", Title: "The Matrix", IMDBRating: &r2},
		}
		svc.On("SearchMovies", mock.Anything, expectedParams).Return(results, nil).Once()

		recorder := doRequest(server, "/api/movies?limit=2&page=1&sort=title&sort_order=desc&search=matrix")

		assert.Equal(t, http.StatusOK, recorder.Code)
		var decoded []movies.MovieSummary
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
		assert.Equal(t, results, decoded)
		svc.AssertExpectations(t)
	})

	t.Run("should keep object keys in declaration order", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		rating := 8.7
		svc.On("SearchMovies", mock.Anything, mock.Anything).
			Return([]movies.MovieSummary{{ID: "m1", Title: "The Matrix", IMDBRating: &rating}}, nil).Once()

		recorder := doRequest(server, "/api/movies")

		body := recorder.Body.String()
		idIdx := strings.Index(body, `"id"`)
		titleIdx := strings.Index(body, `"title"`)
		ratingIdx := strings.Index(body, `"imdb_rating"`)
		assert.True(t, idIdx >= 0 && idIdx < titleIdx && titleIdx < ratingIdx,
			"expected id, title, imdb_rating key order, got %s", body)
	})

	t.Run("should apply defaults when the query string is empty", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		svc.On("SearchMovies", mock.Anything, movies.DefaultSearchParams()).
			Return([]movies.MovieSummary{}, nil).Once()

		recorder := doRequest(server, "/api/movies")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "[]\n", recorder.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("should serve the trailing-slash route", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		svc.On("SearchMovies", mock.Anything, movies.DefaultSearchParams()).
			Return([]movies.MovieSummary{}, nil).Once()

		recorder := doRequest(server, "/api/movies/")

		assert.Equal(t, http.StatusOK, recorder.Code)
		svc.AssertExpectations(t)
	})

	t.Run("should return 422 naming the field for a non-positive page", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		recorder := doRequest(server, "/api/movies?page=0")

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		detail := decodeDetail(t, recorder)
		require.Len(t, detail, 1)
		assert.Equal(t, []string{"query", "page"}, detail[0].Loc)
		svc.AssertNotCalled(t, "SearchMovies")
	})

	t.Run("should accumulate every failing field", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		recorder := doRequest(server, "/api/movies?limit=abc&page=-1&sort=year&sort_order=up")

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		detail := decodeDetail(t, recorder)
		require.Len(t, detail, 4)

		seen := make(map[string]bool, len(detail))
		for _, f := range detail {
			require.Len(t, f.Loc, 2)
			seen[f.Loc[1]] = true
		}
		assert.Equal(t, map[string]bool{"limit": true, "page": true, "sort": true, "sort_order": true}, seen)
		svc.AssertNotCalled(t, "SearchMovies")
	})

	t.Run("should return 502 when the engine is unavailable", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		svc.On("SearchMovies", mock.Anything, mock.Anything).
			Return([]movies.MovieSummary(nil), errs.Errorf(errs.EUNAVAILABLE, "search engine unavailable")).Once()

		recorder := doRequest(server, "/api/movies")

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "search engine",
			"engine failure details must not leak to clients")
		svc.AssertExpectations(t)
	})
}

func TestGetMovie(t *testing.T) {
	t.Run("should return 200 with the detail shape", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		rating := 8.7
		movie := movies.Movie{
			ID: "tt0133093", Title: "The Matrix",
			Description: "A hacker learns the truth.",
			IMDBRating:  &rating,
			Writers:     json.RawMessage(`[]`),
			Actors:      []movies.Actor{{ID: 101, Name: "Keanu Reeves"}},
			Genre:       json.RawMessage(`["Action"]`),
			Director:    json.RawMessage(`"Lana Wachowski"`),
		}
		svc.On("GetMovie", mock.Anything, "tt0133093").Return(movie, nil).Once()

		recorder := doRequest(server, "/api/movies/tt0133093")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{
			"id": "tt0133093",
			"title": "The Matrix",
			"description": "A hacker learns the truth.",
			"imdb_rating": 8.7,
			"writers": [],
			"actors": [{"id": 101, "name": "Keanu Reeves"}],
			"genre": ["Action"],
			"director": "Lana Wachowski"
		}`, recorder.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("should return 404 for a lookup miss", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		svc.On("GetMovie", mock.Anything, "unknown-id").
			Return(movies.Movie{}, movies.ErrNotFound).Once()

		recorder := doRequest(server, "/api/movies/unknown-id")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		svc.AssertExpectations(t)
	})

	t.Run("should return 500 for a malformed upstream document", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		svc.On("GetMovie", mock.Anything, "tt0000004").
			Return(movies.Movie{}, errs.Errorf(errs.EINTERNAL, `malformed document: actor id "abc" is not an integer`)).Once()

		recorder := doRequest(server, "/api/movies/tt0000004")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "actor id",
			"document details must not leak to clients")
		svc.AssertExpectations(t)
	})

	t.Run("should return 502 when the engine is unavailable", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newTestServer(t, svc)

		svc.On("GetMovie", mock.Anything, "tt0133093").
			Return(movies.Movie{}, errs.Errorf(errs.EUNAVAILABLE, "search engine unavailable")).Once()

		recorder := doRequest(server, "/api/movies/tt0133093")

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		svc.AssertExpectations(t)
	})
}
