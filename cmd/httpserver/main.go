package main

import (
	"fmt"
	"os"

	sentrygo "github.com/getsentry/sentry-go"

	"github.com/vilus/yandex-praktikum-searcher/elasticsearch"
	"github.com/vilus/yandex-praktikum-searcher/httpserver"
	"github.com/vilus/yandex-praktikum-searcher/movies"
	"github.com/vilus/yandex-praktikum-searcher/pkg/config"
	"github.com/vilus/yandex-praktikum-searcher/pkg/logger"
	"github.com/vilus/yandex-praktikum-searcher/pkg/sentry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Errorw("cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	esClient, err := elasticsearch.NewClient(elasticsearch.Options{
		URL:      cfg.Elasticsearch.URL,
		Username: cfg.Elasticsearch.Username,
		Password: cfg.Elasticsearch.Password,
	})
	if err != nil {
		log.Errorw("cannot create elasticsearch client", "error", err)
		os.Exit(1)
	}

	repo := elasticsearch.NewMovieRepository(esClient, cfg.Elasticsearch.MoviesIndex)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movies.NewUsecase(repo)),
	)
	if err != nil {
		log.Errorw("cannot create server", "error", err)
		os.Exit(1)
	}

	log.Infow("server started", "port", cfg.Port, "index", cfg.Elasticsearch.MoviesIndex)
	if err := server.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
}
