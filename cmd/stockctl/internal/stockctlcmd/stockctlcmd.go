// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlcmd provides shared wiring for stockctl commands.
package stockctlcmd

import (
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlconfig"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlpath"
	"github.com/spf13/pflag"
)

// DirFlagName is the flag name for the stockctl base directory.
const DirFlagName = "dir"

// OutputFlagName is the flag name for overriding the summary export path.
const OutputFlagName = "output"

// BindDirFlag registers the --dir flag.
func BindDirFlag(flagSet *pflag.FlagSet, dir *string) {
	flagSet.StringVar(dir, DirFlagName, ".", "The stockctl directory containing stockctl.yaml")
}

// ReadConfig reads the configuration from dirPath and applies an optional
// --output override to the export path.
func ReadConfig(container appext.Container, dirPath string, output string) (*stockctlconfig.Config, error) {
	config, err := stockctlconfig.ReadConfig(dirPath)
	if err != nil {
		return nil, err
	}
	if output != "" {
		// --output is relative to the working directory, not the base directory.
		exportFilePath, err := stockctlpath.ExportFilePath(".", output)
		if err != nil {
			return nil, err
		}
		config.ExportFilePath = exportFilePath
	}
	container.Logger().Debug(
		"read config",
		"dir", config.DirPath,
		"frontend", string(config.Frontend),
		"export_file", config.ExportFilePath,
		"catalog_entries", config.Catalog.Len(),
	)
	return config, nil
}
