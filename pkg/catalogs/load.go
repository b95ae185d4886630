package catalogs

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/scentmap/scentmap/pkg/errors"
)

// Dataset file names within a catalog directory.
const (
	brandsFile   = "brands.yaml"
	perfumesFile = "perfumes.yaml"
)

// perfumeRecord is the on-disk shape of a perfume. It references its brand
// by ID; the loader denormalizes the reference into an embedded Brand
// snapshot, matching the in-memory model.
type perfumeRecord struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	Brand         string        `yaml:"brand"`
	Year          int           `yaml:"year,omitempty"`
	Gender        Gender        `yaml:"gender"`
	Concentration Concentration `yaml:"concentration"`
	Notes         []Note        `yaml:"notes"`
	Description   string        `yaml:"description"`
	Image         string        `yaml:"image"`
	Price         *float64      `yaml:"price,omitempty"`
	Rating        *float64      `yaml:"rating,omitempty"`
	ReviewCount   *int          `yaml:"review_count,omitempty"`
}

// Load loads the catalog from the configured filesystem.
func (cat *catalog) Load() error {
	if cat.config.readFS == nil {
		return nil // Memory catalog - nothing to load
	}

	if err := cat.loadBrandsYAML(); err != nil {
		return err
	}

	return cat.loadPerfumesYAML()
}

// loadBrandsYAML loads brands from brands.yaml.
func (cat *catalog) loadBrandsYAML() error {
	data, err := fs.ReadFile(cat.config.readFS, brandsFile)
	if err != nil {
		return nil // File doesn't exist is okay
	}

	var brands []Brand
	if err := yaml.Unmarshal(data, &brands); err != nil {
		return errors.WrapParse("yaml", brandsFile, err)
	}

	for _, b := range brands {
		if b.ID == "" {
			return errors.NewParseError("yaml", brandsFile, "brand without id", nil)
		}
		// Write through the collection so read-only catalogs still load.
		brandCopy := b
		_ = cat.brands.Set(brandCopy.ID, &brandCopy)
	}
	return nil
}

// loadPerfumesYAML loads perfumes from perfumes.yaml, resolving brand
// references and enforcing dataset invariants: unique perfume IDs, known
// brand IDs, non-empty validated notes.
func (cat *catalog) loadPerfumesYAML() error {
	data, err := fs.ReadFile(cat.config.readFS, perfumesFile)
	if err != nil {
		return nil // File doesn't exist is okay
	}

	var records []perfumeRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return errors.WrapParse("yaml", perfumesFile, err)
	}

	for _, rec := range records {
		brand, ok := cat.brands.Get(rec.Brand)
		if !ok {
			return errors.NewParseError("yaml", perfumesFile,
				"perfume "+rec.ID+" references unknown brand "+rec.Brand, nil)
		}

		perfume := Perfume{
			ID:            rec.ID,
			Name:          rec.Name,
			Brand:         *brand, // embedded snapshot, not a live reference
			Year:          rec.Year,
			Gender:        rec.Gender,
			Concentration: rec.Concentration,
			Notes:         rec.Notes,
			Description:   rec.Description,
			Image:         rec.Image,
			Price:         rec.Price,
			Rating:        rec.Rating,
			ReviewCount:   rec.ReviewCount,
		}
		if err := perfume.Validate(); err != nil {
			return errors.NewParseError("yaml", perfumesFile, "perfume "+rec.ID+": "+err.Error(), err)
		}

		perfumeCopy := deepCopyPerfume(perfume)
		if err := cat.perfumes.Add(&perfumeCopy); err != nil {
			return errors.NewParseError("yaml", perfumesFile, err.Error(), err)
		}
	}
	return nil
}
