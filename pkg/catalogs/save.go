package catalogs

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/scentmap/scentmap/pkg/errors"
	"github.com/scentmap/scentmap/pkg/logging"
)

// File and directory permissions for saved dataset files.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Save writes the catalog dataset files to the given directory. An empty
// dir falls back to the configured write path.
func (cat *catalog) Save(dir string) error {
	if dir == "" {
		dir = cat.config.writePath
	}
	if dir == "" {
		return errors.NewValidationError("dir", dir, "no write path configured for saving")
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	if err := cat.saveBrandsYAML(dir); err != nil {
		return err
	}
	if err := cat.savePerfumesYAML(dir); err != nil {
		return err
	}

	logging.Debug().
		Str("dir", dir).
		Int("brands", cat.brands.Len()).
		Int("perfumes", cat.perfumes.Len()).
		Msg("Saved catalog dataset")
	return nil
}

// saveBrandsYAML writes brands.yaml in collection order.
func (cat *catalog) saveBrandsYAML(dir string) error {
	data, err := yaml.Marshal(cat.brands.List())
	if err != nil {
		return errors.WrapParse("yaml", brandsFile, err)
	}

	path := filepath.Join(dir, brandsFile)
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// savePerfumesYAML writes perfumes.yaml with brand ID references, the
// inverse of the loader's denormalization.
func (cat *catalog) savePerfumesYAML(dir string) error {
	perfumes := cat.perfumes.List()
	records := make([]perfumeRecord, 0, len(perfumes))
	for _, p := range perfumes {
		records = append(records, perfumeRecord{
			ID:            p.ID,
			Name:          p.Name,
			Brand:         p.Brand.ID,
			Year:          p.Year,
			Gender:        p.Gender,
			Concentration: p.Concentration,
			Notes:         p.Notes,
			Description:   p.Description,
			Image:         p.Image,
			Price:         p.Price,
			Rating:        p.Rating,
			ReviewCount:   p.ReviewCount,
		})
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return errors.WrapParse("yaml", perfumesFile, err)
	}

	path := filepath.Join(dir, perfumesFile)
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
