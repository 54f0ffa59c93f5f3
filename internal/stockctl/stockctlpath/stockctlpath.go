// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlpath derives file paths from the stockctl base directory.
//
// The base directory (--dir flag) contains:
//
//	stockctl.yaml          Optional config file
//	Stock_portfolio.txt    Default summary export
package stockctlpath

import (
	"path/filepath"

	"github.com/bufdev/stockctl/internal/standard/xos"
)

// ConfigFileName is the well-known config file name within the base directory.
const ConfigFileName = "stockctl.yaml"

// ConfigFilePath returns the path to the config file within the base directory.
func ConfigFilePath(dirPath string) string {
	return filepath.Join(dirPath, ConfigFileName)
}

// ExportFilePath resolves the summary export path.
//
// A leading ~ is expanded to the home directory. Absolute paths are returned
// as-is and relative paths are resolved against the base directory.
func ExportFilePath(dirPath string, exportFile string) (string, error) {
	exportFile, err := xos.ExpandHome(exportFile)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(exportFile) {
		return exportFile, nil
	}
	return filepath.Join(dirPath, exportFile), nil
}
