// Package editor tracks the single variant being edited and applies
// validated changes to it.
package editor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/messages"
)

// ErrNotOpen is returned by Commit when no variant is open for editing.
var ErrNotOpen = errors.New(messages.EditNotOpen)

// ValidationError reports input that cannot be committed. The session stays
// open so the user can correct it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Target addresses a variant by product id and position.
type Target struct {
	ProductID    int
	VariantIndex int
}

// Draft carries the current variant values used to pre-fill the edit form.
type Draft struct {
	Target      Target
	ProductName string
	Weight      string
	Sale        string
	Min         string
	Available   bool
}

// Session is a two-state machine: closed, or open on exactly one Target.
// Methods are safe for concurrent use; a commit and an open never interleave.
type Session struct {
	mu     sync.Mutex
	store  *catalog.Store
	target *Target
}

// New returns a closed session editing variants in store.
func New(store *catalog.Store) *Session {
	return &Session{store: store}
}

// Open targets the variant at index of productID, replacing any open target,
// and returns its current values. An unknown target leaves the state unchanged.
func (s *Session) Open(productID int, index int) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.store.Find(productID)
	if err != nil {
		return Draft{}, err
	}
	variant, err := s.store.Variant(productID, index)
	if err != nil {
		return Draft{}, err
	}

	target := Target{ProductID: productID, VariantIndex: index}
	s.target = &target

	draft := Draft{
		Target:      target,
		ProductName: product.Name,
		Weight:      variant.Weight,
		Sale:        FormatPrice(variant.SalePrice),
		Available:   variant.Available,
	}
	if variant.MinPrice != nil {
		draft.Min = FormatPrice(*variant.MinPrice)
	}
	return draft, nil
}

// Commit validates the inputs and writes them to the open variant, then closes
// the session. saleInput is required; a blank minInput clears the minimum price.
// No range checks are applied, so zero and negative prices are accepted.
func (s *Session) Commit(saleInput string, minInput string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target == nil {
		return ErrNotOpen
	}

	sale, err := parseSale(saleInput)
	if err != nil {
		return err
	}
	minPrice, err := parseMin(minInput)
	if err != nil {
		return err
	}

	target := *s.target
	err = s.store.UpdateVariant(target.ProductID, target.VariantIndex, func(v *catalog.Variant) {
		v.SalePrice = sale
		v.MinPrice = minPrice
		v.Available = available
	})
	if err != nil {
		return fmt.Errorf(messages.EditCommitFmt, err)
	}
	s.target = nil
	return nil
}

// Close dismisses the open edit without changing the store.
func (s *Session) Close() {
	s.mu.Lock()
	s.target = nil
	s.mu.Unlock()
}

// IsOpen reports whether a variant is open for editing.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target != nil
}

// Target returns the open target, if any.
func (s *Session) Target() (Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target == nil {
		return Target{}, false
	}
	return *s.target, true
}

// FormatPrice renders a price the way the form shows it: shortest exact
// decimal form, no trailing zeros.
func FormatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func parseSale(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, &ValidationError{Field: "sale", Reason: messages.EditSaleMandatory}
	}
	value, err := parseNumber(trimmed)
	if err != nil {
		return 0, &ValidationError{Field: "sale", Reason: messages.EditSaleNotNumber}
	}
	return value, nil
}

func parseMin(input string) (*float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	value, err := parseNumber(trimmed)
	if err != nil {
		return nil, &ValidationError{Field: "min", Reason: messages.EditMinNotNumber}
	}
	return catalog.Price(value), nil
}

// parseNumber accepts finite decimal numbers. Hex floats, NaN and Inf are
// rejected because they have no JSON form.
func parseNumber(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, strconv.ErrSyntax
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}
