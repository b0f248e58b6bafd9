package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. Used as the default in servers so tests
// don't have to wire a real logger.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a SugaredLogger for the given environment: human-readable
// output locally, JSON everywhere else.
func New(env string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if env == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}
