// Copyright 2026 Peter Edge
//
// All rights reserved.

package stockctlcatalog

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	catalog := Default()
	require.Equal(t, 26, catalog.Len())
	entry, ok := catalog.Lookup("CRDB")
	require.True(t, ok)
	require.Equal(t, Entry{Symbol: "CRDB", Name: "CRDB Bank", UnitPrice: 1200}, entry)
	price, ok := catalog.UnitPrice("JATU")
	require.True(t, ok)
	require.Equal(t, int64(70), price)
	first, ok := catalog.First()
	require.True(t, ok)
	require.Equal(t, "CRDB", first.Symbol)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	t.Parallel()
	catalog := Default()
	_, ok := catalog.Lookup("crdb")
	require.False(t, ok)
	_, ok = catalog.Lookup(NormalizeSymbol("  crdb "))
	require.True(t, ok)
	_, ok = catalog.Lookup("ZZZZ")
	require.False(t, ok)
}

func TestAllIsOrderedAndRestartable(t *testing.T) {
	t.Parallel()
	catalog, err := NewCatalog(
		Entry{Symbol: "NMB", Name: "NMB Bank", UnitPrice: 1500},
		Entry{Symbol: "CRDB", Name: "CRDB Bank", UnitPrice: 1200},
		Entry{Symbol: "TOL", Name: "Tol Gases Limited", UnitPrice: 500},
	)
	require.NoError(t, err)
	symbols := func() []string {
		var result []string
		for entry := range catalog.All() {
			result = append(result, entry.Symbol)
		}
		return result
	}
	want := []string{"NMB", "CRDB", "TOL"}
	if diff := cmp.Diff(want, symbols()); diff != "" {
		t.Errorf("first iteration mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, symbols()); diff != "" {
		t.Errorf("second iteration mismatch (-want +got):\n%s", diff)
	}
	// Early termination stops the sequence.
	for entry := range catalog.All() {
		require.Equal(t, "NMB", entry.Symbol)
		break
	}
	require.Len(t, slices.Collect(catalog.All()), 3)
}

func TestNewCatalogValidation(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name    string
		entries []Entry
	}{
		{name: "empty symbol", entries: []Entry{{Name: "X", UnitPrice: 1}}},
		{name: "lowercase symbol", entries: []Entry{{Symbol: "crdb", Name: "CRDB Bank", UnitPrice: 1}}},
		{name: "inner space", entries: []Entry{{Symbol: "CR DB", Name: "CRDB Bank", UnitPrice: 1}}},
		{name: "inner tab", entries: []Entry{{Symbol: "CR\tDB", Name: "CRDB Bank", UnitPrice: 1}}},
		{name: "comma", entries: []Entry{{Symbol: "CR,DB", Name: "CRDB Bank", UnitPrice: 1}}},
		{name: "comma and space", entries: []Entry{{Symbol: "CR, DB", Name: "CRDB Bank", UnitPrice: 1}}},
		{name: "missing name", entries: []Entry{{Symbol: "CRDB", UnitPrice: 1}}},
		{name: "negative price", entries: []Entry{{Symbol: "CRDB", Name: "CRDB Bank", UnitPrice: -1}}},
		{
			name: "duplicate",
			entries: []Entry{
				{Symbol: "CRDB", Name: "CRDB Bank", UnitPrice: 1},
				{Symbol: "CRDB", Name: "CRDB Bank", UnitPrice: 2},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCatalog(test.entries...)
			require.Error(t, err)
		})
	}
}

func TestParseCatalogYAML(t *testing.T) {
	t.Parallel()
	catalog, err := ParseCatalogYAML([]byte(`entries:
  - symbol: CRDB
    name: CRDB Bank
    price: 1200
  - symbol: NMB
    name: NMB Bank
    price: 0
`))
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())
	_, err = ParseCatalogYAML([]byte("entries:\n  - symbol: CRDB\n    name: CRDB Bank\n    cost: 12\n"))
	require.Error(t, err)
	_, err = ParseCatalogYAML([]byte("entries: []\n"))
	require.Error(t, err)
}
