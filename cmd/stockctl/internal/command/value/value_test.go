// Copyright 2026 Peter Edge
//
// All rights reserved.

package value

import (
	"math"
	"testing"

	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlportfolio"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
	"github.com/stretchr/testify/require"
)

func TestParseHoldings(t *testing.T) {
	t.Parallel()
	holdings, err := parseHoldings([]string{"crdb=2", " NMB = 1"})
	require.NoError(t, err)
	require.Equal(t, []stockctlvalue.Holding{{Symbol: "CRDB", Quantity: 2}, {Symbol: "NMB", Quantity: 1}}, holdings)
	for _, value := range []string{"CRDB", "CRDB=", "CRDB=0", "CRDB=-1", "CRDB=x", "=3"} {
		_, err := parseHoldings([]string{value})
		require.Error(t, err, "value %q", value)
	}
}

func TestAccumulate(t *testing.T) {
	t.Parallel()
	holdings, err := accumulate(stockctlcatalog.Default(), []stockctlvalue.Holding{
		{Symbol: "CRDB", Quantity: 2},
		{Symbol: "ZZZZ", Quantity: 1},
		{Symbol: "NMB", Quantity: 1},
		{Symbol: "CRDB", Quantity: 3},
		{Symbol: "ZZZZ", Quantity: 4},
	})
	require.NoError(t, err)
	require.Equal(t, []stockctlvalue.Holding{
		{Symbol: "CRDB", Quantity: 5},
		{Symbol: "ZZZZ", Quantity: 5},
		{Symbol: "NMB", Quantity: 1},
	}, holdings)
	require.Equal(t, int64(7500), stockctlvalue.TotalValue(stockctlcatalog.Default(), holdings))
}

func TestAccumulateRejectsOverflow(t *testing.T) {
	t.Parallel()
	catalog := stockctlcatalog.Default()
	crdb, ok := catalog.UnitPrice("CRDB")
	require.True(t, ok)
	half := math.MaxInt64 / crdb / 2
	holdings, err := accumulate(catalog, []stockctlvalue.Holding{{Symbol: "CRDB", Quantity: half}, {Symbol: "CRDB", Quantity: half}})
	require.NoError(t, err)
	require.Equal(t, []stockctlvalue.Holding{{Symbol: "CRDB", Quantity: 2 * half}}, holdings)

	_, err = accumulate(catalog, []stockctlvalue.Holding{
		{Symbol: "CRDB", Quantity: half + 1},
		{Symbol: "CRDB", Quantity: half + 1},
	})
	require.ErrorIs(t, err, stockctlportfolio.ErrInvalidQuantity)
	_, err = accumulate(catalog, []stockctlvalue.Holding{
		{Symbol: "ZZZZ", Quantity: math.MaxInt64},
		{Symbol: "ZZZZ", Quantity: 1},
	})
	require.ErrorIs(t, err, stockctlportfolio.ErrInvalidQuantity)
}
