package httpserver

import (
	"go.uber.org/zap"

	"github.com/vilus/yandex-praktikum-searcher/movies"
	"github.com/vilus/yandex-praktikum-searcher/pkg/config"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		s.Config = cfg
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movies.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}
