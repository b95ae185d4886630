package catalogs

import (
	"fmt"
	"sync"
	"testing"
)

func TestPerfumesOrder(t *testing.T) {
	perfumes := NewPerfumes()

	for _, id := range []string{"c", "a", "b"} {
		p := testPerfume(id)
		if err := perfumes.Add(&p); err != nil {
			t.Fatalf("Failed to add perfume %s: %v", id, err)
		}
	}

	t.Run("ListKeepsInsertionOrder", func(t *testing.T) {
		listed := perfumes.List()
		want := []string{"c", "a", "b"}
		for i, id := range want {
			if listed[i].ID != id {
				t.Fatalf("Expected order %v, got position %d = '%s'", want, i, listed[i].ID)
			}
		}
	})

	t.Run("SetUpsertKeepsPosition", func(t *testing.T) {
		updated := testPerfume("a")
		updated.Name = "Renamed"
		if err := perfumes.Set("a", &updated); err != nil {
			t.Fatalf("Failed to set perfume: %v", err)
		}

		listed := perfumes.List()
		if listed[1].ID != "a" || listed[1].Name != "Renamed" {
			t.Errorf("Expected 'a' renamed in place, got %v", listed[1])
		}
	})

	t.Run("AddRejectsDuplicates", func(t *testing.T) {
		dup := testPerfume("a")
		if err := perfumes.Add(&dup); err == nil {
			t.Error("Expected error adding duplicate perfume ID")
		}
	})

	t.Run("DeleteRemovesFromOrder", func(t *testing.T) {
		if err := perfumes.Delete("a"); err != nil {
			t.Fatalf("Failed to delete perfume: %v", err)
		}
		listed := perfumes.List()
		if len(listed) != 2 || listed[0].ID != "c" || listed[1].ID != "b" {
			t.Errorf("Expected [c b] after delete, got %v", listed)
		}
	})

	t.Run("ForEachStopsEarly", func(t *testing.T) {
		var seen int
		perfumes.ForEach(func(_ string, _ *Perfume) bool {
			seen++
			return false
		})
		if seen != 1 {
			t.Errorf("Expected iteration to stop after 1 perfume, got %d", seen)
		}
	})
}

func TestPerfumesConcurrentAccess(t *testing.T) {
	perfumes := NewPerfumes(WithPerfumesCapacity(100))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				p := testPerfume(fmt.Sprintf("perfume-%d-%d", n, j))
				_ = perfumes.Set(p.ID, &p)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = perfumes.List()
				_ = perfumes.Len()
			}
		}()
	}
	wg.Wait()

	if perfumes.Len() != 100 {
		t.Errorf("Expected 100 perfumes after concurrent writes, got %d", perfumes.Len())
	}
}

func TestBrandsCollection(t *testing.T) {
	brands := NewBrands()

	for _, id := range []string{"one", "two"} {
		if err := brands.Set(id, &Brand{ID: id, Name: id}); err != nil {
			t.Fatalf("Failed to set brand %s: %v", id, err)
		}
	}

	if !brands.Exists("one") {
		t.Error("Expected brand 'one' to exist")
	}
	if brands.Len() != 2 {
		t.Errorf("Expected 2 brands, got %d", brands.Len())
	}

	brands.Clear()
	if brands.Len() != 0 {
		t.Errorf("Expected empty collection after Clear, got %d", brands.Len())
	}
}
