// Copyright 2026 Peter Edge
//
// All rights reserved.

package cliio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	format, err := ParseFormat("CSV")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, format)
	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestFormatTshs(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Tshs 0", FormatTshs(0))
	require.Equal(t, "Tshs 70", FormatTshs(70))
	require.Equal(t, "Tshs 1,200", FormatTshs(1200))
	require.Equal(t, "Tshs 1,234,567", FormatTshs(1234567))
}

func TestWriteTableWithTotals(t *testing.T) {
	t.Parallel()
	var buffer bytes.Buffer
	err := WriteTableWithTotals(
		&buffer,
		[]string{"SYMBOL", "VALUE"},
		[][]string{{"CRDB", "2400"}, {"NMB", "1500"}},
		[]string{"TOTAL", "3900"},
	)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "SYMBOL"))
	require.Equal(t, "", strings.TrimSpace(lines[3]))
	require.Equal(t, "TOTAL   3900", lines[4])
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	var buffer bytes.Buffer
	type row struct {
		Symbol string `json:"symbol"`
	}
	require.NoError(t, WriteJSON(&buffer, row{Symbol: "CRDB"}, row{Symbol: "NMB"}))
	require.Equal(t, "{\"symbol\":\"CRDB\"}\n{\"symbol\":\"NMB\"}\n", buffer.String())
}
