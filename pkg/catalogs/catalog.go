// Package catalogs provides the core catalog system for perfume metadata.
// It offers multiple implementations (embedded, file-based, memory) behind a
// consistent interface: the embedded catalog compiles the dataset into the
// binary for production use, while file and memory catalogs support
// development and testing.
//
// Example usage:
//
//	// Create an embedded catalog (production use)
//	catalog, err := catalogs.New(catalogs.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, perfume := range catalog.List() {
//	    fmt.Printf("Perfume: %s\n", perfume.ID)
//	}
package catalogs

import (
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/scentmap/scentmap/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog     = (*catalog)(nil)
	_ Reader      = (*catalog)(nil)
	_ Writer      = (*catalog)(nil)
	_ Persistence = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
// It can work as:
// - Memory catalog (readFS == nil)
// - Embedded catalog (readFS is embed.FS)
// - Files catalog (readFS is os.DirFS)
// - Custom catalog (readFS is any fs.FS implementation).
type catalog struct {
	config   *catalogConfig
	brands   *Brands
	perfumes *Perfumes
}

// New creates a new catalog with the given options.
// WithEmbedded() = embedded catalog with auto-load
// WithPath(path) = files catalog with auto-load.
func New(opts ...Option) (Catalog, error) {
	cat := &catalog{
		brands:   NewBrands(),
		perfumes: NewPerfumes(),
		config:   catalogDefaults().apply(opts...),
	}

	// Auto-load if configured with a filesystem
	if cat.config.readFS != nil {
		if err := cat.Load(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// NewEmbedded creates a catalog backed by embedded dataset files.
// This is the recommended catalog for production use as the full perfume
// dataset is compiled into the binary. The dataset is fixed at build time,
// so the catalog is read-only and Writer mutations return errors.ErrReadOnly.
func NewEmbedded() (Catalog, error) {
	return New(WithEmbedded(), WithReadOnly())
}

// NewFromPath creates a catalog backed by files on disk. This is useful for
// development when you want to edit dataset files without recompiling.
func NewFromPath(path string) (Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	return New(WithPath(path))
}

// NewFromFS creates a catalog from a custom filesystem implementation.
func NewFromFS(fsys fs.FS, root string) (Catalog, error) {
	subFS, err := fs.Sub(fsys, root)
	if err != nil {
		return nil, errors.WrapIO("open", root, err)
	}
	return New(WithFS(subFS))
}

// NewEmpty creates an in-memory empty catalog. This is useful for testing or
// temporary catalogs that don't need a dataset on disk.
func NewEmpty() Catalog {
	return &catalog{
		brands:   NewBrands(),
		perfumes: NewPerfumes(),
		config:   catalogDefaults(),
	}
}

// Brands returns the brands collection.
func (cat *catalog) Brands() *Brands {
	return cat.brands
}

// Perfumes returns the perfumes collection. Callers must not mutate the
// records it holds.
func (cat *catalog) Perfumes() *Perfumes {
	return cat.perfumes
}

// Brand returns a brand by ID.
func (cat *catalog) Brand(id string) (Brand, error) {
	brand, ok := cat.brands.Get(id)
	if !ok {
		return Brand{}, &errors.NotFoundError{
			Resource: "brand",
			ID:       id,
		}
	}
	return *brand, nil
}

// Perfume returns a perfume by ID.
func (cat *catalog) Perfume(id string) (Perfume, error) {
	perfume, ok := cat.perfumes.Get(id)
	if !ok {
		return Perfume{}, &errors.NotFoundError{
			Resource: "perfume",
			ID:       id,
		}
	}
	return *perfume, nil
}

// SearchBrands returns the brands whose name contains the keyword,
// case-insensitively, in dataset order.
func (cat *catalog) SearchBrands(keyword string) []Brand {
	var matches []Brand
	cat.brands.ForEach(func(_ string, brand *Brand) bool {
		if containsFold(brand.Name, keyword) {
			matches = append(matches, *brand)
		}
		return true
	})
	return matches
}

// List returns all perfumes in dataset order.
func (cat *catalog) List() []Perfume {
	return cat.perfumes.List()
}

// SetBrand sets a brand (upsert). The stored record is a copy.
func (cat *catalog) SetBrand(brand Brand) error {
	if cat.config.readOnly {
		return errors.ErrReadOnly
	}
	brandCopy := brand
	return cat.brands.Set(brandCopy.ID, &brandCopy)
}

// SetPerfume validates and sets a perfume (upsert). The stored record is a
// deep copy to keep catalog records immutable from the caller's side.
func (cat *catalog) SetPerfume(perfume Perfume) error {
	if cat.config.readOnly {
		return errors.ErrReadOnly
	}
	if err := perfume.Validate(); err != nil {
		return err
	}
	perfumeCopy := deepCopyPerfume(perfume)
	return cat.perfumes.Set(perfumeCopy.ID, &perfumeCopy)
}

// DeleteBrand deletes a brand.
func (cat *catalog) DeleteBrand(id string) error {
	if cat.config.readOnly {
		return errors.ErrReadOnly
	}
	return cat.brands.Delete(id)
}

// DeletePerfume deletes a perfume.
func (cat *catalog) DeletePerfume(id string) error {
	if cat.config.readOnly {
		return errors.ErrReadOnly
	}
	return cat.perfumes.Delete(id)
}

// deepCopyPerfume copies a perfume including its notes slice and optional
// numeric fields, so the catalog never shares backing storage with callers.
func deepCopyPerfume(p Perfume) Perfume {
	perfumeCopy := p
	perfumeCopy.Notes = make([]Note, len(p.Notes))
	copy(perfumeCopy.Notes, p.Notes)
	if p.Price != nil {
		price := *p.Price
		perfumeCopy.Price = &price
	}
	if p.Rating != nil {
		rating := *p.Rating
		perfumeCopy.Rating = &rating
	}
	if p.ReviewCount != nil {
		count := *p.ReviewCount
		perfumeCopy.ReviewCount = &count
	}
	return perfumeCopy
}

// containsFold reports whether substr is within s under Unicode case folding.
// A fresh caser per call: cases.Caser values are stateful and not safe for
// concurrent use.
func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
