// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlform implements the form-based front end.
//
// A Form holds the live Portfolio and the current selection. Every mutation is
// followed by building a fresh ViewModel, which is rendered as a whole; the
// ViewModel never references the Portfolio it was built from.
package stockctlform

import (
	"errors"
	"fmt"

	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlportfolio"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
)

const (
	// MinQuantity is the smallest quantity the form accepts.
	MinQuantity = 1
	// MaxQuantity is the largest quantity the form accepts.
	MaxQuantity = 1_000_000
)

// ErrQuantityOutOfRange is returned when a quantity is outside [MinQuantity, MaxQuantity].
var ErrQuantityOutOfRange = fmt.Errorf("quantity must be between %d and %d", MinQuantity, MaxQuantity)

// Selection is the symbol and quantity the next Add will use.
type Selection struct {
	Symbol   string
	Quantity int64
}

// Form is the state behind the form front end.
type Form struct {
	catalog   *stockctlcatalog.Catalog
	portfolio *stockctlportfolio.Portfolio
	selection Selection
}

// NewForm returns a new Form with an empty portfolio.
//
// The first catalog entry is selected with quantity MinQuantity.
func NewForm(catalog *stockctlcatalog.Catalog) *Form {
	form := &Form{
		catalog:   catalog,
		portfolio: stockctlportfolio.NewPortfolio(catalog),
		selection: Selection{Quantity: MinQuantity},
	}
	if first, ok := catalog.First(); ok {
		form.selection.Symbol = first.Symbol
	}
	return form
}

// Selection returns the current selection.
func (f *Form) Selection() Selection {
	return f.selection
}

// Portfolio returns the live portfolio.
func (f *Form) Portfolio() *stockctlportfolio.Portfolio {
	return f.portfolio
}

// Select selects the symbol for the next Add. The input is normalized to uppercase.
func (f *Form) Select(symbol string) error {
	symbol = stockctlcatalog.NormalizeSymbol(symbol)
	if _, ok := f.catalog.Lookup(symbol); !ok {
		return fmt.Errorf("%w: %q", stockctlportfolio.ErrUnknownSymbol, symbol)
	}
	f.selection.Symbol = symbol
	return nil
}

// SetQuantity sets the quantity for the next Add.
func (f *Form) SetQuantity(quantity int64) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return fmt.Errorf("%w, got %d", ErrQuantityOutOfRange, quantity)
	}
	f.selection.Quantity = quantity
	return nil
}

// Add adds the current selection to the portfolio.
func (f *Form) Add() error {
	if f.selection.Symbol == "" {
		return errors.New("please select a stock")
	}
	return f.portfolio.Add(f.selection.Symbol, f.selection.Quantity)
}

// Remove removes the symbol from the portfolio. Removing a symbol that is not held is a no-op.
func (f *Form) Remove(symbol string) {
	f.portfolio.Remove(stockctlcatalog.NormalizeSymbol(symbol))
}

// Save exports the portfolio summary to filePath and returns the total.
func (f *Form) Save(filePath string) (int64, error) {
	return stockctlvalue.ExportSummary(f.catalog, f.portfolio.Holdings(), filePath)
}

// View returns a snapshot of the form for rendering.
func (f *Form) View() *ViewModel {
	return NewViewModel(f.catalog, f.portfolio.Holdings(), f.selection)
}
