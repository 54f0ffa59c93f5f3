// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlcatalog provides the immutable table of tradable symbols.
//
// A Catalog is constructed once at startup, either from the embedded seed table
// (see Default) or from the catalog section of the config file, and is passed
// explicitly to everything that needs prices.
package stockctlcatalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Entry is a single tradable symbol.
type Entry struct {
	// Symbol is the uppercase ticker symbol (e.g., "CRDB").
	Symbol string `json:"symbol" yaml:"symbol"`
	// Name is the display name of the listed company.
	Name string `json:"name" yaml:"name"`
	// UnitPrice is the price of one share in whole shillings.
	UnitPrice int64 `json:"unit_price" yaml:"price"`
}

// Catalog is an immutable mapping from symbol to Entry that remembers insertion order.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// NewCatalog validates the entries and returns a new Catalog in the given order.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	catalog := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		if _, ok := catalog.index[entry.Symbol]; ok {
			return nil, fmt.Errorf("duplicate catalog symbol %q", entry.Symbol)
		}
		catalog.index[entry.Symbol] = len(catalog.entries)
		catalog.entries = append(catalog.entries, entry)
	}
	return catalog, nil
}

// Default returns the seed catalog embedded in the binary.
func Default() *Catalog {
	catalog, err := ParseCatalogYAML(defaultCatalogYAML)
	if err != nil {
		// Covered by TestDefault.
		panic(fmt.Sprintf("invalid embedded catalog: %v", err))
	}
	return catalog
}

// ParseCatalogYAML parses a YAML document with a top-level "entries" list.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var externalCatalog struct {
		Entries []Entry `yaml:"entries"`
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(&externalCatalog); err != nil {
		return nil, fmt.Errorf("could not unmarshal catalog as YAML: %w", err)
	}
	if len(externalCatalog.Entries) == 0 {
		return nil, errors.New("catalog has no entries")
	}
	return NewCatalog(externalCatalog.Entries...)
}

// Lookup returns the entry for the symbol.
//
// Matching is case-sensitive against the stored uppercase symbols. Callers
// normalize user input with NormalizeSymbol first.
func (c *Catalog) Lookup(symbol string) (Entry, bool) {
	i, ok := c.index[symbol]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// UnitPrice returns the unit price for the symbol.
func (c *Catalog) UnitPrice(symbol string) (int64, bool) {
	entry, ok := c.Lookup(symbol)
	return entry.UnitPrice, ok
}

// All returns the entries in insertion order.
//
// The sequence may be iterated any number of times.
func (c *Catalog) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, entry := range c.entries {
			if !yield(entry) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// First returns the first entry, or false if the catalog is empty.
func (c *Catalog) First() (Entry, bool) {
	if len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[0], true
}

// NormalizeSymbol trims surrounding whitespace and uppercases user input.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func validateEntry(entry Entry) error {
	if entry.Symbol == "" {
		return errors.New("catalog symbol is required")
	}
	if entry.Symbol != NormalizeSymbol(entry.Symbol) {
		return fmt.Errorf("catalog symbol %q must be uppercase with no surrounding whitespace", entry.Symbol)
	}
	// Summary lines are split on ", " so symbols must not contain separators.
	if strings.ContainsFunc(entry.Symbol, isSymbolSeparator) {
		return fmt.Errorf("catalog symbol %q must not contain commas or whitespace", entry.Symbol)
	}
	if entry.Name == "" {
		return fmt.Errorf("catalog symbol %q has no name", entry.Symbol)
	}
	if entry.UnitPrice < 0 {
		return fmt.Errorf("catalog symbol %q has negative price %d", entry.Symbol, entry.UnitPrice)
	}
	return nil
}

func isSymbolSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
