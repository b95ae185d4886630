package catalogs

import (
	"fmt"
	"sync"
)

// Brands is a concurrent safe collection of brands, preserving insertion order.
type Brands struct {
	mu     sync.RWMutex
	order  []string
	brands map[string]*Brand
}

// NewBrands creates a new Brands collection.
func NewBrands() *Brands {
	return &Brands{
		brands: make(map[string]*Brand),
	}
}

// Get returns a brand by id and whether it exists.
func (b *Brands) Get(id string) (*Brand, bool) {
	b.mu.RLock()
	brand, ok := b.brands[id]
	b.mu.RUnlock()
	return brand, ok
}

// Set sets a brand by id (upsert). Returns an error if brand is nil.
func (b *Brands) Set(id string, brand *Brand) error {
	if brand == nil {
		return fmt.Errorf("brand cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.brands[id]; !exists {
		b.order = append(b.order, id)
	}
	b.brands[id] = brand
	return nil
}

// Delete removes a brand by id. Returns an error if the brand doesn't exist.
func (b *Brands) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.brands[id]; !exists {
		return fmt.Errorf("brand with ID %s not found", id)
	}

	delete(b.brands, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists checks if a brand exists without returning it.
func (b *Brands) Exists(id string) bool {
	b.mu.RLock()
	_, exists := b.brands[id]
	b.mu.RUnlock()
	return exists
}

// Len returns the number of brands.
func (b *Brands) Len() int {
	b.mu.RLock()
	length := len(b.brands)
	b.mu.RUnlock()
	return length
}

// List returns the brands as values in collection order.
func (b *Brands) List() []Brand {
	b.mu.RLock()
	brands := make([]Brand, 0, len(b.order))
	for _, id := range b.order {
		brands = append(brands, *b.brands[id])
	}
	b.mu.RUnlock()
	return brands
}

// ForEach applies a function to each brand in collection order. If the
// function returns false, iteration stops early.
func (b *Brands) ForEach(fn func(id string, brand *Brand) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, id := range b.order {
		if !fn(id, b.brands[id]) {
			break
		}
	}
}

// Clear removes all brands.
func (b *Brands) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.order = b.order[:0]
	for k := range b.brands {
		delete(b.brands, k)
	}
}
