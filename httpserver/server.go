package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/vilus/yandex-praktikum-searcher/errs"
	"github.com/vilus/yandex-praktikum-searcher/movies"
	"github.com/vilus/yandex-praktikum-searcher/pkg/config"
	"github.com/vilus/yandex-praktikum-searcher/pkg/logger"
	"github.com/vilus/yandex-praktikum-searcher/pkg/metrics"
	"github.com/vilus/yandex-praktikum-searcher/pkg/sentry"
)

type Server struct {
	Router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	MovieService movies.Service
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router: echo.New(),
		Config: config.Empty,
		Logger: logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.httpErrorHandler
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes(s.Router.Group(""))
	s.RegisterMovieRoutes(s.Router.Group("/api/movies"))
	s.Router.GET("/metrics", metrics.Handler())

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(metrics.Middleware())

	// CORS
	if s.Config.AllowOrigins != "" {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: strings.Split(s.Config.AllowOrigins, ","),
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Start(addr string) error {
	return s.Router.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// httpErrorHandler converts every failure into an HTTP response: accumulated
// validation errors become a 422 detail list, application error codes map to
// statuses, everything else is a 500. Engine error payloads are never
// forwarded to clients.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		s.writeJSON(c, http.StatusUnprocessableEntity, map[string]interface{}{
			"detail": verr.Fields,
		})
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			status = http.StatusBadRequest
		case errs.ENOTFOUND:
			status = http.StatusNotFound
		case errs.ECONFLICT:
			status = http.StatusConflict
		case errs.EUNAUTHORIZED:
			status = http.StatusUnauthorized
		case errs.ENOTIMPLEMENTED:
			status = http.StatusNotImplemented
		case errs.EUNAVAILABLE:
			status = http.StatusBadGateway
		}
	}

	if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
		s.Logger.Errorw(
			"request failed",
			"error", err,
			"request_id", s.requestID(c),
		)
		sentry.WithContext(c).Error(err)
	}

	s.writeJSON(c, status, map[string]string{
		"message": http.StatusText(status),
	})
}

func (s *Server) writeJSON(c echo.Context, status int, body interface{}) {
	if err := c.JSON(status, body); err != nil {
		s.Logger.Errorw("write response", "error", err)
	}
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
