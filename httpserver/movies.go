package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vilus/yandex-praktikum-searcher/errs"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.GET("/", s.handleListMovies)
	g.GET("/:movie_id", s.handleGetMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Paginated, sortable full-text movie search
// @Tags movies
// @Produce json
// @Param limit query int false "Page size, default 50"
// @Param page query int false "Page number, default 1"
// @Param sort query string false "One of id|title|imdb_rating, default id"
// @Param sort_order query string false "One of asc|desc, default asc"
// @Param search query string false "Full-text search, empty matches everything"
// @Success 200 {array} movies.MovieSummary
// @Failure 422 {object} map[string][]FieldError
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	params, err := bindListMoviesRequest(c)
	if err != nil {
		return err
	}

	results, err := s.MovieService.SearchMovies(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, results)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Fetch one movie by its identifier
// @Tags movies
// @Produce json
// @Param movie_id path string true "Movie ID"
// @Success 200 {object} movies.Movie
// @Failure 404 {object} map[string]string
// @Router /api/movies/{movie_id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	movie, err := s.MovieService.GetMovie(c.Request().Context(), c.Param("movie_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movie)
}
