// Copyright 2026 Peter Edge
//
// All rights reserved.

package stockctlform

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlportfolio"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewFormSelectsFirstEntry(t *testing.T) {
	t.Parallel()
	form := NewForm(newTestCatalog(t))
	require.Equal(t, Selection{Symbol: "CRDB", Quantity: 1}, form.Selection())
	require.Equal(t, 0, form.Portfolio().Len())
}

func TestFormAddRemove(t *testing.T) {
	t.Parallel()
	form := NewForm(newTestCatalog(t))
	require.NoError(t, form.SetQuantity(2))
	require.NoError(t, form.Add())
	require.NoError(t, form.Select("nmb"))
	require.NoError(t, form.SetQuantity(1))
	require.NoError(t, form.Add())
	require.Equal(t, int64(3900), form.Portfolio().TotalValue())

	require.NoError(t, form.Select("CRDB"))
	require.NoError(t, form.SetQuantity(3))
	require.NoError(t, form.Add())
	require.Equal(t, int64(5), form.Portfolio().Quantity("CRDB"))

	form.Remove("crdb")
	form.Remove("crdb")
	require.Equal(t, int64(0), form.Portfolio().Quantity("CRDB"))
	require.Equal(t, int64(1500), form.Portfolio().TotalValue())
}

func TestFormRejects(t *testing.T) {
	t.Parallel()
	form := NewForm(newTestCatalog(t))
	require.ErrorIs(t, form.Select("ZZZZ"), stockctlportfolio.ErrUnknownSymbol)
	require.Equal(t, "CRDB", form.Selection().Symbol)
	require.ErrorIs(t, form.SetQuantity(0), ErrQuantityOutOfRange)
	require.ErrorIs(t, form.SetQuantity(MaxQuantity+1), ErrQuantityOutOfRange)
	require.NoError(t, form.SetQuantity(MaxQuantity))
	require.Equal(t, int64(MaxQuantity), form.Selection().Quantity)
}

func TestViewModel(t *testing.T) {
	t.Parallel()
	form := NewForm(newTestCatalog(t))
	require.NoError(t, form.SetQuantity(2))
	require.NoError(t, form.Add())
	require.NoError(t, form.Select("NMB"))
	require.NoError(t, form.SetQuantity(1000))
	want := &ViewModel{
		Catalog: []CatalogRow{
			{Symbol: "CRDB", Name: "CRDB Bank", Price: "Tshs 1,200"},
			{Symbol: "NMB", Name: "NMB Bank", Price: "Tshs 1,500"},
		},
		Portfolio: []PortfolioRow{
			{Symbol: "CRDB", Name: "CRDB Bank", Quantity: "2", UnitPrice: "Tshs 1,200", Value: "Tshs 2,400"},
		},
		Selection: SelectionRow{Symbol: "NMB", Quantity: "1000", UnitPrice: "Tshs 1,500", LineTotal: "Tshs 1,500,000"},
		Total:     "Tshs 2,400",
	}
	if diff := cmp.Diff(want, form.View()); diff != "" {
		t.Errorf("view model mismatch (-want +got):\n%s", diff)
	}
}

func TestViewModelIsSnapshot(t *testing.T) {
	t.Parallel()
	form := NewForm(newTestCatalog(t))
	require.NoError(t, form.Add())
	view := form.View()
	form.Remove("CRDB")
	require.Len(t, view.Portfolio, 1)
	require.Empty(t, form.View().Portfolio)
	require.Equal(t, "Tshs 0", form.View().Total)
}

func TestFormSave(t *testing.T) {
	t.Parallel()
	form := NewForm(newTestCatalog(t))
	require.NoError(t, form.Add())
	filePath := filepath.Join(t.TempDir(), "Stock_portfolio.txt")
	total, err := form.Save(filePath)
	require.NoError(t, err)
	require.Equal(t, int64(1200), total)
	_, err = form.Save(filepath.Join(t.TempDir(), "missing", "out.txt"))
	require.Error(t, err)
}

func TestSession(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	defaultFilePath := filepath.Join(dirPath, "Stock_portfolio.txt")
	input := strings.Join([]string{
		"add crdb 2",
		"add NMB 1",
		"add zzzz 1",
		"qty 0",
		"qty abc",
		"select crdb",
		"qty 3",
		"add",
		"remove NMB",
		"remove NMB",
		"frobnicate",
		"save " + filepath.Join(dirPath, "missing", "x.txt"),
		"save",
		"quit",
		"add CRDB 1",
	}, "\n")
	var output bytes.Buffer
	form := NewForm(newTestCatalog(t))
	session := NewSession(newTestLogger(), form, strings.NewReader(input), &output, defaultFilePath)
	require.NoError(t, session.Run(context.Background()))

	require.Equal(t, int64(5), form.Portfolio().Quantity("CRDB"))
	require.Equal(t, int64(0), form.Portfolio().Quantity("NMB"))
	require.Equal(t, 1, form.Portfolio().Len())
	text := output.String()
	require.Contains(t, text, "Available Stocks")
	require.Contains(t, text, "Total: Tshs 3,900")
	require.Contains(t, text, `error: stock not available: "ZZZZ"`)
	require.Contains(t, text, "error: quantity must be between 1 and 1000000, got 0")
	require.Contains(t, text, `error: please enter a valid integer quantity, got "abc"`)
	require.Contains(t, text, `error: unknown command "frobnicate"`)
	require.Contains(t, text, "error: could not save portfolio: ")
	require.Contains(t, text, "Portfolio saved to "+defaultFilePath+"\nTotal: Tshs 6,000")

	data, err := os.ReadFile(defaultFilePath)
	require.NoError(t, err)
	require.Equal(t, "YOUR PORTFOLIO SUMMARY\nCRDB, quantity: 5, value: Tshs6000\n\nTotal Investment: Tshs 6000\n", string(data))
}

func TestSessionEndOfInput(t *testing.T) {
	t.Parallel()
	form := NewForm(newTestCatalog(t))
	session := NewSession(newTestLogger(), form, strings.NewReader("add NMB 2\n"), io.Discard, "unused.txt")
	require.NoError(t, session.Run(context.Background()))
	require.Equal(t, int64(2), form.Portfolio().Quantity("NMB"))
}

func TestSessionCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := NewSession(newTestLogger(), NewForm(newTestCatalog(t)), strings.NewReader("add\n"), io.Discard, "unused.txt")
	require.ErrorIs(t, session.Run(ctx), context.Canceled)
}

func newTestCatalog(t *testing.T) *stockctlcatalog.Catalog {
	t.Helper()
	catalog, err := stockctlcatalog.NewCatalog(
		stockctlcatalog.Entry{Symbol: "CRDB", Name: "CRDB Bank", UnitPrice: 1200},
		stockctlcatalog.Entry{Symbol: "NMB", Name: "NMB Bank", UnitPrice: 1500},
	)
	require.NoError(t, err)
	return catalog
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
