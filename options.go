package scentmap

import (
	"time"

	"github.com/scentmap/scentmap/pkg/catalogs"
	"github.com/scentmap/scentmap/pkg/collections"
)

type config struct {
	catalog  catalogs.Catalog
	backend  collections.Backend
	storeDir string
	latency  time.Duration
	pageSize int
}

// Option configures a Client.
type Option func(*config)

// WithCatalog uses the given catalog instead of the embedded one.
func WithCatalog(catalog catalogs.Catalog) Option {
	return func(c *config) {
		c.catalog = catalog
	}
}

// WithStoreDir persists user collections under dir instead of ~/.scentmap.
func WithStoreDir(dir string) Option {
	return func(c *config) {
		c.storeDir = dir
	}
}

// WithBackend uses a custom collections backend. Takes precedence over
// WithStoreDir.
func WithBackend(backend collections.Backend) Option {
	return func(c *config) {
		c.backend = backend
	}
}

// WithLatency adds an artificial delay to every service call.
func WithLatency(d time.Duration) Option {
	return func(c *config) {
		c.latency = d
	}
}

// WithPageSize sets the default page size for searches and browse state.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}
