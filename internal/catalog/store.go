package catalog

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product has no variant at the requested index.
	ErrVariantNotFound = errors.New("variant not found")
)

// Store is the source of truth for the session catalog. It performs no
// validation: product ids are assumed unique and lookups return the first match.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace discards the current catalog and installs a copy of products.
func (s *Store) Replace(products []Product) {
	copied := CloneAll(products)
	s.mu.Lock()
	s.products = copied
	s.mu.Unlock()
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	s.products = nil
	s.mu.Unlock()
}

// Len returns the number of products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// All returns the catalog in order. The result is a copy.
func (s *Store) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneAll(s.products)
}

// Find returns the first product with the given id.
func (s *Store) Find(id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return s.products[idx].Clone(), nil
}

// Variant returns the variant at index of the product with productID.
func (s *Store) Variant(productID int, index int) (Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, err := s.variantLocked(productID, index)
	if err != nil {
		return Variant{}, err
	}
	return v.clone(), nil
}

// UpdateVariant applies fn to the addressed variant in place.
// fn runs under the store's write lock and must not call back into the store.
func (s *Store) UpdateVariant(productID int, index int, fn func(*Variant)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.variantLocked(productID, index); err != nil {
		return err
	}
	fn(&s.products[s.indexOf(productID)].Variants[index])
	return nil
}

func (s *Store) variantLocked(productID int, index int) (Variant, error) {
	idx := s.indexOf(productID)
	if idx < 0 {
		return Variant{}, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
	}
	variants := s.products[idx].Variants
	if index < 0 || index >= len(variants) {
		return Variant{}, fmt.Errorf("%w: product %d index %d", ErrVariantNotFound, productID, index)
	}
	return variants[index], nil
}

func (s *Store) indexOf(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
