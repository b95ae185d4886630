// Package scentmap is a perfume catalog browsing library. It bundles an
// immutable embedded catalog, a pure query engine, an async-shaped access
// service, per-user browse state, and persisted user collections behind a
// single client.
//
// Basic usage:
//
//	client, err := scentmap.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := client.Service().Search(ctx, "rose", catalogs.Filter{}, 1, 20)
package scentmap

import (
	"os"
	"path/filepath"

	"github.com/scentmap/scentmap/pkg/browse"
	"github.com/scentmap/scentmap/pkg/catalogs"
	"github.com/scentmap/scentmap/pkg/collections"
	"github.com/scentmap/scentmap/pkg/errors"
	"github.com/scentmap/scentmap/pkg/service"
)

// Client is the top-level entry point. It owns the catalog, the access
// service over it, the browse state, and the user's collections.
type Client struct {
	catalog     catalogs.Catalog
	service     *service.Service
	browse      *browse.Store
	collections *collections.Store
}

// New creates a client with the embedded catalog and a file-backed
// collections store under ~/.scentmap, unless options say otherwise.
func New(opts ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	catalog := cfg.catalog
	if catalog == nil {
		var err error
		catalog, err = catalogs.NewEmbedded()
		if err != nil {
			return nil, errors.WrapIO("load", "embedded catalog", err)
		}
	}

	backend := cfg.backend
	if backend == nil {
		dir := cfg.storeDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, errors.WrapIO("resolve", "home directory", err)
			}
			dir = filepath.Join(home, ".scentmap")
		}
		var err error
		backend, err = collections.NewFileBackend(dir)
		if err != nil {
			return nil, err
		}
	}

	userStore, err := collections.New(backend)
	if err != nil {
		return nil, err
	}

	svcOpts := []service.ServiceOption{}
	if cfg.latency > 0 {
		svcOpts = append(svcOpts, service.WithLatency(cfg.latency))
	}
	if cfg.pageSize > 0 {
		svcOpts = append(svcOpts, service.WithPageSize(cfg.pageSize))
	}
	svc := service.New(catalog, svcOpts...)

	browseOpts := []browse.StoreOption{}
	if cfg.pageSize > 0 {
		browseOpts = append(browseOpts, browse.WithPageSize(cfg.pageSize))
	}

	return &Client{
		catalog:     catalog,
		service:     svc,
		browse:      browse.New(svc, browseOpts...),
		collections: userStore,
	}, nil
}

// Catalog returns the underlying catalog.
func (c *Client) Catalog() catalogs.Catalog {
	return c.catalog
}

// Service returns the catalog access service.
func (c *Client) Service() *service.Service {
	return c.service
}

// Browse returns the browse state store.
func (c *Client) Browse() *browse.Store {
	return c.browse
}

// Collections returns the user collections store.
func (c *Client) Collections() *collections.Store {
	return c.collections
}
