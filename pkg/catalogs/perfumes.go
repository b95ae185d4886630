package catalogs

import (
	"fmt"
	"sync"
)

// Perfumes is a concurrent safe collection of perfumes. Unlike a plain map
// it preserves insertion order: dataset order is meaningful for stable
// sorting and for first-occurrence brand listings.
type Perfumes struct {
	mu       sync.RWMutex
	order    []string
	perfumes map[string]*Perfume
}

// PerfumesOption defines a function that configures a Perfumes instance.
type PerfumesOption func(*Perfumes)

// WithPerfumesCapacity sets the initial capacity of the collection.
func WithPerfumesCapacity(capacity int) PerfumesOption {
	return func(p *Perfumes) {
		p.order = make([]string, 0, capacity)
		p.perfumes = make(map[string]*Perfume, capacity)
	}
}

// NewPerfumes creates a new Perfumes collection with optional configuration.
func NewPerfumes(opts ...PerfumesOption) *Perfumes {
	p := &Perfumes{
		perfumes: make(map[string]*Perfume),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Get returns a perfume by id and whether it exists.
func (p *Perfumes) Get(id string) (*Perfume, bool) {
	p.mu.RLock()
	perfume, ok := p.perfumes[id]
	p.mu.RUnlock()
	return perfume, ok
}

// Set sets a perfume by id (upsert). New ids append to the collection order.
// Returns an error if perfume is nil.
func (p *Perfumes) Set(id string, perfume *Perfume) error {
	if perfume == nil {
		return fmt.Errorf("perfume cannot be nil")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.perfumes[id]; !exists {
		p.order = append(p.order, id)
	}
	p.perfumes[id] = perfume
	return nil
}

// Add adds a perfume, returning an error if it already exists.
func (p *Perfumes) Add(perfume *Perfume) error {
	if perfume == nil {
		return fmt.Errorf("perfume cannot be nil")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.perfumes[perfume.ID]; exists {
		return fmt.Errorf("perfume with ID %s already exists", perfume.ID)
	}

	p.order = append(p.order, perfume.ID)
	p.perfumes[perfume.ID] = perfume
	return nil
}

// Delete removes a perfume by id. Returns an error if the perfume doesn't exist.
func (p *Perfumes) Delete(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.perfumes[id]; !exists {
		return fmt.Errorf("perfume with ID %s not found", id)
	}

	delete(p.perfumes, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists checks if a perfume exists without returning it.
func (p *Perfumes) Exists(id string) bool {
	p.mu.RLock()
	_, exists := p.perfumes[id]
	p.mu.RUnlock()
	return exists
}

// Len returns the number of perfumes.
func (p *Perfumes) Len() int {
	p.mu.RLock()
	length := len(p.perfumes)
	p.mu.RUnlock()
	return length
}

// List returns the perfumes as values in collection order. The returned
// slice is a copy; the records themselves must not be mutated by callers.
func (p *Perfumes) List() []Perfume {
	p.mu.RLock()
	perfumes := make([]Perfume, 0, len(p.order))
	for _, id := range p.order {
		perfumes = append(perfumes, *p.perfumes[id])
	}
	p.mu.RUnlock()
	return perfumes
}

// ForEach applies a function to each perfume in collection order. The
// function should not modify the perfume. If the function returns false,
// iteration stops early.
func (p *Perfumes) ForEach(fn func(id string, perfume *Perfume) bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, id := range p.order {
		if !fn(id, p.perfumes[id]) {
			break
		}
	}
}

// Clear removes all perfumes.
func (p *Perfumes) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.order = p.order[:0]
	for k := range p.perfumes {
		delete(p.perfumes, k)
	}
}
