// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlportfolio provides the session-scoped mapping of symbol to held quantity.
package stockctlportfolio

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
)

var (
	// ErrUnknownSymbol is returned when adding a symbol that is not in the catalog.
	ErrUnknownSymbol = errors.New("stock not available")
	// ErrInvalidQuantity is returned when adding a non-positive quantity, or a
	// quantity that would push a quantity, line value, or total past math.MaxInt64.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Portfolio accumulates quantities per symbol in first-added order.
//
// Every symbol is in the catalog the Portfolio was created with, and every
// quantity is positive. A Portfolio is not safe for concurrent use.
type Portfolio struct {
	catalog    *stockctlcatalog.Catalog
	symbols    []string
	quantities map[string]int64
}

// NewPortfolio returns a new empty Portfolio validated against the catalog.
func NewPortfolio(catalog *stockctlcatalog.Catalog) *Portfolio {
	return &Portfolio{
		catalog:    catalog,
		quantities: make(map[string]int64),
	}
}

// Add adds quantity shares of symbol.
//
// If the symbol is already held the quantity is added to the existing one and
// the symbol keeps its position. The portfolio is unchanged on error.
func (p *Portfolio) Add(symbol string, quantity int64) error {
	entry, ok := p.catalog.Lookup(symbol)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	existing, held := p.quantities[symbol]
	if quantity > math.MaxInt64-existing {
		return fmt.Errorf("%w: %s quantity %d plus %d is too large", ErrInvalidQuantity, symbol, existing, quantity)
	}
	newQuantity := existing + quantity
	// Line values and the total must stay representable so that TotalValue never wraps.
	if entry.UnitPrice > 0 {
		if newQuantity > math.MaxInt64/entry.UnitPrice {
			return fmt.Errorf("%w: %s value of %d shares is too large", ErrInvalidQuantity, symbol, newQuantity)
		}
		otherTotal := p.TotalValue() - entry.UnitPrice*existing
		if entry.UnitPrice*newQuantity > math.MaxInt64-otherTotal {
			return fmt.Errorf("%w: portfolio total is too large", ErrInvalidQuantity)
		}
	}
	if !held {
		p.symbols = append(p.symbols, symbol)
	}
	p.quantities[symbol] = newQuantity
	return nil
}

// Remove deletes the symbol entirely. Removing a symbol that is not held is a no-op.
func (p *Portfolio) Remove(symbol string) {
	if _, ok := p.quantities[symbol]; !ok {
		return
	}
	delete(p.quantities, symbol)
	p.symbols = slices.DeleteFunc(p.symbols, func(s string) bool { return s == symbol })
}

// Quantity returns the held quantity of the symbol, or 0 if not held.
func (p *Portfolio) Quantity(symbol string) int64 {
	return p.quantities[symbol]
}

// Len returns the number of distinct symbols held.
func (p *Portfolio) Len() int {
	return len(p.symbols)
}

// All returns symbol and quantity pairs in order.
func (p *Portfolio) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, symbol := range p.symbols {
			if !yield(symbol, p.quantities[symbol]) {
				return
			}
		}
	}
}

// Holdings returns a snapshot of the holdings in order.
func (p *Portfolio) Holdings() []stockctlvalue.Holding {
	holdings := make([]stockctlvalue.Holding, 0, len(p.symbols))
	for symbol, quantity := range p.All() {
		holdings = append(holdings, stockctlvalue.Holding{Symbol: symbol, Quantity: quantity})
	}
	return holdings
}

// TotalValue returns the total value of the holdings at catalog prices.
func (p *Portfolio) TotalValue() int64 {
	return stockctlvalue.TotalValue(p.catalog, p.Holdings())
}

// Catalog returns the catalog the Portfolio validates against.
func (p *Portfolio) Catalog() *stockctlcatalog.Catalog {
	return p.catalog
}
