package catalogs

// Reader provides read-only access to catalog data.
type Reader interface {
	// Collections of brands and perfumes, in dataset order
	Brands() *Brands
	Perfumes() *Perfumes

	// Gets a brand or perfume by id; misses yield a NotFoundError
	Brand(id string) (Brand, error)
	Perfume(id string) (Perfume, error)

	// SearchBrands matches brands by case-insensitive name substring
	SearchBrands(keyword string) []Brand

	// List returns all perfumes in dataset order
	List() []Perfume
}

// Writer provides write operations for catalog data.
type Writer interface {
	// Sets a brand or perfume (upsert semantics)
	SetBrand(brand Brand) error
	SetPerfume(perfume Perfume) error

	// Deletes a brand or perfume by id
	DeleteBrand(id string) error
	DeletePerfume(id string) error
}

// Persistence provides catalog save capabilities for file-backed catalogs.
type Persistence interface {
	// Save writes the catalog dataset files to the given directory
	Save(dir string) error
}

// Catalog is the complete interface combining all catalog capabilities.
type Catalog interface {
	Reader
	Writer
	Persistence
}
