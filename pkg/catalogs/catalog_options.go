package catalogs

import (
	"io/fs"
	"os"

	"github.com/scentmap/scentmap/internal/embedded"
)

// catalogConfig holds the configuration for a catalog.
type catalogConfig struct {
	readFS    fs.FS  // For reading dataset files
	writePath string // For writing dataset files (optional)
	readOnly  bool   // Reject Writer mutations
}

// apply applies the given options to the catalog configuration.
func (c *catalogConfig) apply(opts ...Option) *catalogConfig {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default configuration for a catalog.
func catalogDefaults() *catalogConfig {
	return &catalogConfig{
		readFS:    nil,
		writePath: "",
	}
}

// Option configures a catalog.
type Option func(*catalogConfig)

// WithFS configures the catalog to use a custom fs.FS for reading.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogConfig) {
		c.readFS = fsys
	}
}

// WithPath configures the catalog to use a directory path for reading.
// This creates an os.DirFS under the hood.
func WithPath(path string) Option {
	return func(c *catalogConfig) {
		c.readFS = os.DirFS(path)
		c.writePath = path // Also set as write path
	}
}

// WithEmbedded configures the catalog to use the embedded dataset files.
func WithEmbedded() Option {
	return func(c *catalogConfig) {
		catalogFS, err := fs.Sub(embedded.FS, "catalog")
		if err != nil {
			// Fall back to using the full embedded FS
			c.readFS = embedded.FS
		} else {
			c.readFS = catalogFS
		}
	}
}

// WithReadOnly makes the catalog reject Writer mutations. Loading still
// populates the collections; SetBrand, SetPerfume, DeleteBrand and
// DeletePerfume return errors.ErrReadOnly.
func WithReadOnly() Option {
	return func(c *catalogConfig) {
		c.readOnly = true
	}
}

// WithWritePath sets a specific path for writing dataset files.
func WithWritePath(path string) Option {
	return func(c *catalogConfig) {
		c.writePath = path
	}
}
