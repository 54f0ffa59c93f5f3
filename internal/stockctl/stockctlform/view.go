// Copyright 2026 Peter Edge
//
// All rights reserved.

package stockctlform

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bufdev/stockctl/internal/pkg/cliio"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
)

// ViewModel is an immutable snapshot of the catalog, the portfolio, and the selection.
type ViewModel struct {
	// Catalog is one row per catalog entry in catalog order.
	Catalog []CatalogRow
	// Portfolio is one row per holding in portfolio order.
	Portfolio []PortfolioRow
	// Selection is the add preview.
	Selection SelectionRow
	// Total is the formatted total value of the portfolio.
	Total string
}

// CatalogRow is a row of the available stocks table.
type CatalogRow struct {
	Symbol string
	Name   string
	Price  string
}

// PortfolioRow is a row of the portfolio table.
type PortfolioRow struct {
	Symbol    string
	Name      string
	Quantity  string
	UnitPrice string
	Value     string
}

// SelectionRow previews the selected symbol and quantity.
type SelectionRow struct {
	Symbol    string
	Quantity  string
	UnitPrice string
	LineTotal string
}

// NewViewModel builds a ViewModel.
func NewViewModel(
	catalog *stockctlcatalog.Catalog,
	holdings []stockctlvalue.Holding,
	selection Selection,
) *ViewModel {
	viewModel := &ViewModel{
		Catalog:   make([]CatalogRow, 0, catalog.Len()),
		Portfolio: make([]PortfolioRow, 0, len(holdings)),
		Total:     cliio.FormatTshs(stockctlvalue.TotalValue(catalog, holdings)),
	}
	for entry := range catalog.All() {
		viewModel.Catalog = append(viewModel.Catalog, CatalogRow{
			Symbol: entry.Symbol,
			Name:   entry.Name,
			Price:  cliio.FormatTshs(entry.UnitPrice),
		})
	}
	for _, holding := range holdings {
		entry, _ := catalog.Lookup(holding.Symbol)
		viewModel.Portfolio = append(viewModel.Portfolio, PortfolioRow{
			Symbol:    holding.Symbol,
			Name:      entry.Name,
			Quantity:  strconv.FormatInt(holding.Quantity, 10),
			UnitPrice: cliio.FormatTshs(entry.UnitPrice),
			Value:     cliio.FormatTshs(stockctlvalue.LineValue(catalog, holding)),
		})
	}
	selectedHolding := stockctlvalue.Holding{Symbol: selection.Symbol, Quantity: selection.Quantity}
	unitPrice, _ := catalog.UnitPrice(selection.Symbol)
	viewModel.Selection = SelectionRow{
		Symbol:    selection.Symbol,
		Quantity:  strconv.FormatInt(selection.Quantity, 10),
		UnitPrice: cliio.FormatTshs(unitPrice),
		LineTotal: cliio.FormatTshs(stockctlvalue.LineValue(catalog, selectedHolding)),
	}
	return viewModel
}

// RenderPortfolio writes the portfolio table, the selection preview, and the total.
func RenderPortfolio(writer io.Writer, viewModel *ViewModel) error {
	if _, err := fmt.Fprintln(writer, "Your Portfolio"); err != nil {
		return err
	}
	if len(viewModel.Portfolio) == 0 {
		if _, err := fmt.Fprintln(writer, "(empty)"); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(viewModel.Portfolio))
		for _, row := range viewModel.Portfolio {
			rows = append(rows, []string{row.Symbol, row.Name, row.Quantity, row.UnitPrice, row.Value})
		}
		if err := cliio.WriteTable(writer, []string{"SYMBOL", "COMPANY", "QUANTITY", "UNIT PRICE", "VALUE"}, rows); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(
		writer,
		"\nSelected: %s x %s (unit price: %s, line total: %s)\nTotal: %s\n",
		viewModel.Selection.Symbol,
		viewModel.Selection.Quantity,
		viewModel.Selection.UnitPrice,
		viewModel.Selection.LineTotal,
		viewModel.Total,
	)
	return err
}

// RenderCatalog writes the available stocks table.
func RenderCatalog(writer io.Writer, viewModel *ViewModel) error {
	if _, err := fmt.Fprintln(writer, "Available Stocks"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(viewModel.Catalog))
	for _, row := range viewModel.Catalog {
		rows = append(rows, []string{row.Symbol, row.Name, row.Price})
	}
	return cliio.WriteTable(writer, []string{"SYMBOL", "COMPANY", "PRICE"}, rows)
}
