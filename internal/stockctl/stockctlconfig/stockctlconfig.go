// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlconfig provides configuration parsing and validation for stockctl.
//
// Configuration is stored at <dir>/stockctl.yaml. The file is optional; when
// it does not exist the defaults are used.
package stockctlconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlpath"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
	"gopkg.in/yaml.v3"
)

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The interactive front end used by "stockctl track".
#
# Optional. One of "form" or "prompt". Defaults to "form".
frontend: form
# Summary export configuration.
export:
  # The file the portfolio summary is written to. Relative paths are
  # resolved against the stockctl directory.
  #
  # Optional. Defaults to Stock_portfolio.txt.
  file: Stock_portfolio.txt
# Catalog of tradable symbols.
#
# Optional. Replaces the built-in catalog entirely when set. Symbols must be
# uppercase and unique with no commas or whitespace. Prices are whole shillings.
# catalog:
#   - symbol: CRDB
#     name: CRDB Bank
#     price: 1200
`

// Frontend is an interactive front end.
type Frontend string

const (
	// FrontendForm is the form-based front end.
	FrontendForm Frontend = "form"
	// FrontendPrompt is the sequential prompt loop front end.
	FrontendPrompt Frontend = "prompt"
)

// ParseFrontend parses a string into a Frontend, returning an error for unknown values.
func ParseFrontend(s string) (Frontend, error) {
	switch strings.ToLower(s) {
	case "form":
		return FrontendForm, nil
	case "prompt", "cli":
		return FrontendPrompt, nil
	default:
		return "", fmt.Errorf("unknown frontend %q, must be one of: form, prompt", s)
	}
}

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// Frontend is the default interactive front end.
	Frontend string `yaml:"frontend"`
	// Export holds the summary export configuration.
	Export ExternalExportConfig `yaml:"export"`
	// Catalog optionally replaces the built-in catalog.
	Catalog []stockctlcatalog.Entry `yaml:"catalog"`
}

// ExternalExportConfig holds summary export configuration.
type ExternalExportConfig struct {
	// File is the summary export file path.
	File string `yaml:"file"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// DirPath is the base directory the configuration was read from.
	DirPath string
	// Frontend is the default interactive front end.
	Frontend Frontend
	// ExportFilePath is the resolved summary export path.
	ExportFilePath string
	// Catalog is the catalog of tradable symbols.
	Catalog *stockctlcatalog.Catalog
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(dirPath string, externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	frontend := FrontendForm
	if externalConfig.Frontend != "" {
		var err error
		frontend, err = ParseFrontend(externalConfig.Frontend)
		if err != nil {
			return nil, err
		}
	}
	exportFile := externalConfig.Export.File
	if exportFile == "" {
		exportFile = stockctlvalue.DefaultSummaryFileName
	}
	exportFilePath, err := stockctlpath.ExportFilePath(dirPath, exportFile)
	if err != nil {
		return nil, err
	}
	catalog := stockctlcatalog.Default()
	if len(externalConfig.Catalog) > 0 {
		catalog, err = stockctlcatalog.NewCatalog(externalConfig.Catalog...)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	}
	return &Config{
		DirPath:        dirPath,
		Frontend:       frontend,
		ExportFilePath: exportFilePath,
		Catalog:        catalog,
	}, nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(dirPath string) (*Config, error) {
	return NewConfig(dirPath, ExternalConfig{Version: "v1"})
}

// ReadConfig reads and validates the configuration file from the given base directory.
//
// If the file does not exist, DefaultConfig is returned.
func ReadConfig(dirPath string) (*Config, error) {
	filePath := stockctlpath.ConfigFilePath(dirPath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(dirPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parseConfig(dirPath, filePath, data)
}

// InitConfig creates a new configuration file with a documented template.
// Creates the base directory if it does not exist.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(dirPath string) (string, error) {
	filePath := stockctlpath.ConfigFilePath(dirPath)
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("configuration file already exists: %s", filePath)
	}
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(configTemplate), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// ValidateConfigFile reads and validates the configuration file at the given path.
//
// Unlike ReadConfig, a missing file is an error.
func ValidateConfigFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	_, err = parseConfig(".", filePath, data)
	return err
}

func parseConfig(dirPath string, filePath string, data []byte) (*Config, error) {
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	config, err := NewConfig(dirPath, externalConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}
	return config, nil
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
