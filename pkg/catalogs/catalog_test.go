package catalogs

import (
	stderrors "errors"
	"testing"

	"github.com/scentmap/scentmap/pkg/errors"
)

func floatPtr(v float64) *float64 { return &v }

func testPerfume(id string) Perfume {
	return Perfume{
		ID:            id,
		Name:          "Test Perfume",
		Brand:         Brand{ID: "test-brand", Name: "Test Brand"},
		Gender:        GenderUnisex,
		Concentration: ConcentrationEauDeParfum,
		Notes: []Note{
			{Name: "Bergamot", Type: NoteTypeTop, Family: NoteFamilyCitrus},
		},
	}
}

func TestCatalogModes(t *testing.T) {
	t.Run("MemoryCatalog", func(t *testing.T) {
		cat := NewEmpty()

		if err := cat.SetBrand(Brand{ID: "test-brand", Name: "Test Brand"}); err != nil {
			t.Fatalf("Failed to set brand: %v", err)
		}
		if err := cat.SetPerfume(testPerfume("test-perfume-1")); err != nil {
			t.Fatalf("Failed to set perfume: %v", err)
		}

		perfumes := cat.List()
		if len(perfumes) != 1 {
			t.Errorf("Expected 1 perfume, got %d", len(perfumes))
		}
		if perfumes[0].ID != "test-perfume-1" {
			t.Errorf("Expected perfume ID 'test-perfume-1', got '%s'", perfumes[0].ID)
		}
	})

	t.Run("EmbeddedCatalog", func(t *testing.T) {
		cat, err := New(WithEmbedded())
		if err != nil {
			t.Fatalf("Failed to create embedded catalog: %v", err)
		}

		if len(cat.List()) == 0 {
			t.Error("Embedded catalog should have perfumes")
		}
		if cat.Brands().Len() == 0 {
			t.Error("Embedded catalog should have brands")
		}
	})

	t.Run("FilesCatalog", func(t *testing.T) {
		cat, err := New(WithPath("../../internal/embedded/catalog"))
		if err != nil {
			t.Fatalf("Failed to create files catalog: %v", err)
		}

		if len(cat.List()) == 0 {
			t.Error("Files catalog should have perfumes")
		}
	})

	t.Run("CatalogComparison", func(t *testing.T) {
		embCat, err := New(WithEmbedded())
		if err != nil {
			t.Fatalf("Failed to create embedded catalog: %v", err)
		}
		filesCat, err := New(WithPath("../../internal/embedded/catalog"))
		if err != nil {
			t.Fatalf("Failed to create files catalog: %v", err)
		}

		if len(embCat.List()) != len(filesCat.List()) {
			t.Errorf("Perfume count mismatch: embedded=%d, files=%d",
				len(embCat.List()), len(filesCat.List()))
		}
		if embCat.Brands().Len() != filesCat.Brands().Len() {
			t.Errorf("Brand count mismatch: embedded=%d, files=%d",
				embCat.Brands().Len(), filesCat.Brands().Len())
		}
	})
}

func TestReadOnlyCatalog(t *testing.T) {
	cat, err := NewEmbedded()
	if err != nil {
		t.Fatalf("Failed to create embedded catalog: %v", err)
	}

	if len(cat.List()) == 0 {
		t.Fatal("Read-only catalog should still load its dataset")
	}

	if err := cat.SetBrand(Brand{ID: "new-brand", Name: "New Brand"}); !stderrors.Is(err, errors.ErrReadOnly) {
		t.Errorf("Expected ErrReadOnly from SetBrand, got %v", err)
	}
	if err := cat.SetPerfume(testPerfume("new-perfume")); !stderrors.Is(err, errors.ErrReadOnly) {
		t.Errorf("Expected ErrReadOnly from SetPerfume, got %v", err)
	}
	if err := cat.DeleteBrand("chanel"); !stderrors.Is(err, errors.ErrReadOnly) {
		t.Errorf("Expected ErrReadOnly from DeleteBrand, got %v", err)
	}
	if err := cat.DeletePerfume("chanel-no5"); !stderrors.Is(err, errors.ErrReadOnly) {
		t.Errorf("Expected ErrReadOnly from DeletePerfume, got %v", err)
	}

	// Mutations must not have touched the collections.
	if _, err := cat.Brand("chanel"); err != nil {
		t.Errorf("Brand should survive rejected delete: %v", err)
	}
	if _, err := cat.Perfume("new-perfume"); err == nil {
		t.Error("Rejected perfume should not be present")
	}
}

func TestCatalogLookups(t *testing.T) {
	cat, err := NewEmbedded()
	if err != nil {
		t.Fatalf("Failed to create embedded catalog: %v", err)
	}

	t.Run("PerfumeFound", func(t *testing.T) {
		perfume, err := cat.Perfume("chanel-no5")
		if err != nil {
			t.Fatalf("Failed to get perfume: %v", err)
		}
		if perfume.Brand.ID != "chanel" {
			t.Errorf("Expected brand 'chanel', got '%s'", perfume.Brand.ID)
		}
	})

	t.Run("PerfumeNotFound", func(t *testing.T) {
		_, err := cat.Perfume("does-not-exist")
		if err == nil {
			t.Fatal("Expected error for unknown perfume")
		}
	})

	t.Run("BrandFound", func(t *testing.T) {
		brand, err := cat.Brand("chanel")
		if err != nil {
			t.Fatalf("Failed to get brand: %v", err)
		}
		if brand.Name == "" {
			t.Error("Expected brand name to be set")
		}
	})

	t.Run("SearchBrands", func(t *testing.T) {
		matches := cat.SearchBrands("CHANEL")
		if len(matches) != 1 {
			t.Fatalf("Expected 1 brand match, got %d", len(matches))
		}
		if matches[0].ID != "chanel" {
			t.Errorf("Expected brand 'chanel', got '%s'", matches[0].ID)
		}
	})
}

func TestCatalogImmutability(t *testing.T) {
	t.Run("SetPerfumeStoresDeepCopy", func(t *testing.T) {
		cat := NewEmpty()
		original := testPerfume("copy-check")
		original.Price = floatPtr(100)

		if err := cat.SetPerfume(original); err != nil {
			t.Fatalf("Failed to set perfume: %v", err)
		}

		// Mutating the caller's record must not reach the catalog.
		original.Notes[0].Name = "Mutated"
		*original.Price = 999

		stored, err := cat.Perfume("copy-check")
		if err != nil {
			t.Fatalf("Failed to get perfume: %v", err)
		}
		if stored.Notes[0].Name != "Bergamot" {
			t.Errorf("Expected note 'Bergamot', got '%s'", stored.Notes[0].Name)
		}
		if *stored.Price != 100 {
			t.Errorf("Expected price 100, got %v", *stored.Price)
		}
	})

	t.Run("SetPerfumeValidates", func(t *testing.T) {
		cat := NewEmpty()
		invalid := testPerfume("invalid")
		invalid.Notes = nil

		if err := cat.SetPerfume(invalid); err == nil {
			t.Error("Expected validation error for perfume without notes")
		}
	})

	t.Run("BrandSnapshotDoesNotPropagate", func(t *testing.T) {
		cat := NewEmpty()
		if err := cat.SetBrand(Brand{ID: "test-brand", Name: "Original Name"}); err != nil {
			t.Fatalf("Failed to set brand: %v", err)
		}
		if err := cat.SetPerfume(testPerfume("snapshot-check")); err != nil {
			t.Fatalf("Failed to set perfume: %v", err)
		}

		// Renaming the brand leaves existing perfume snapshots untouched.
		if err := cat.SetBrand(Brand{ID: "test-brand", Name: "Renamed"}); err != nil {
			t.Fatalf("Failed to update brand: %v", err)
		}

		perfume, err := cat.Perfume("snapshot-check")
		if err != nil {
			t.Fatalf("Failed to get perfume: %v", err)
		}
		if perfume.Brand.Name != "Test Brand" {
			t.Errorf("Expected embedded brand snapshot 'Test Brand', got '%s'", perfume.Brand.Name)
		}
	})
}
