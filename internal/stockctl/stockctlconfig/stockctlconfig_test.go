// Copyright 2026 Peter Edge
//
// All rights reserved.

package stockctlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfigMissingUsesDefaults(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, FrontendForm, config.Frontend)
	require.Equal(t, filepath.Join(dirPath, "Stock_portfolio.txt"), config.ExportFilePath)
	require.Equal(t, 26, config.Catalog.Len())
}

func TestInitThenRead(t *testing.T) {
	t.Parallel()
	dirPath := filepath.Join(t.TempDir(), "nested")
	filePath, err := InitConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dirPath, "stockctl.yaml"), filePath)
	// A second init does not overwrite.
	_, err = InitConfig(dirPath)
	require.Error(t, err)

	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, FrontendForm, config.Frontend)
	require.Equal(t, 26, config.Catalog.Len())
	require.NoError(t, ValidateConfigFile(filePath))
}

func TestReadConfigCustom(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	writeConfig(t, dirPath, `version: v1
frontend: prompt
export:
  file: out.txt
catalog:
  - symbol: CRDB
    name: CRDB Bank
    price: 1300
`)
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, FrontendPrompt, config.Frontend)
	require.Equal(t, filepath.Join(dirPath, "out.txt"), config.ExportFilePath)
	require.Equal(t, 1, config.Catalog.Len())
	price, ok := config.Catalog.UnitPrice("CRDB")
	require.True(t, ok)
	require.Equal(t, int64(1300), price)
}

func TestReadConfigInvalid(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name string
		data string
	}{
		{name: "bad version", data: "version: v2\n"},
		{name: "missing version", data: "frontend: form\n"},
		{name: "unknown field", data: "version: v1\ncolor: green\n"},
		{name: "bad frontend", data: "version: v1\nfrontend: gui\n"},
		{name: "bad catalog", data: "version: v1\ncatalog:\n  - symbol: crdb\n    name: CRDB Bank\n    price: 1\n"},
		{name: "catalog symbol with comma", data: "version: v1\ncatalog:\n  - symbol: \"CR, DB\"\n    name: CRDB Bank\n    price: 1\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			dirPath := t.TempDir()
			writeConfig(t, dirPath, test.data)
			_, err := ReadConfig(dirPath)
			require.Error(t, err)
		})
	}
}

func TestValidateConfigFileMissing(t *testing.T) {
	t.Parallel()
	require.Error(t, ValidateConfigFile(filepath.Join(t.TempDir(), "stockctl.yaml")))
}

func TestParseFrontend(t *testing.T) {
	t.Parallel()
	frontend, err := ParseFrontend("Prompt")
	require.NoError(t, err)
	require.Equal(t, FrontendPrompt, frontend)
	frontend, err = ParseFrontend("cli")
	require.NoError(t, err)
	require.Equal(t, FrontendPrompt, frontend)
	_, err = ParseFrontend("tk")
	require.Error(t, err)
}

func writeConfig(t *testing.T, dirPath string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dirPath, "stockctl.yaml"), []byte(data), 0o644))
}
