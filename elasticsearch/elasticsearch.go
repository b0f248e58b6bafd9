package elasticsearch

import (
	es "github.com/elastic/go-elasticsearch/v8"
)

type Options struct {
	URL      string
	Username string
	Password string

	// CACert is the PEM certificate for TLS-enabled clusters, optional.
	CACert []byte
}

// NewClient builds an Elasticsearch client. The client keeps its own
// connection pool and is safe for concurrent use.
func NewClient(opts Options) (*es.Client, error) {
	return es.NewClient(es.Config{
		Addresses: []string{opts.URL},
		Username:  opts.Username,
		Password:  opts.Password,
		CACert:    opts.CACert,
	})
}
