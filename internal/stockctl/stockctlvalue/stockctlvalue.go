// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlvalue computes portfolio valuations and reads and writes
// plain-text portfolio summaries.
//
// The summary file format is:
//
//	YOUR PORTFOLIO SUMMARY
//	<SYMBOL>, quantity: <N>, value: Tshs<unitPrice*N>
//	...
//
//	Total Investment: Tshs <total>
package stockctlvalue

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bufdev/stockctl/internal/standard/xos"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
)

// DefaultSummaryFileName is the file written when no destination is configured.
const DefaultSummaryFileName = "Stock_portfolio.txt"

const (
	summaryHeader      = "YOUR PORTFOLIO SUMMARY"
	summaryTotalPrefix = "Total Investment: Tshs "
)

// Holding is a quantity of a single symbol.
type Holding struct {
	// Symbol is the ticker symbol.
	Symbol string `json:"symbol"`
	// Quantity is the number of shares held.
	Quantity int64 `json:"quantity"`
}

// LineValue returns the unit price of the holding's symbol times its quantity.
//
// Symbols absent from the catalog are valued at 0.
func LineValue(catalog *stockctlcatalog.Catalog, holding Holding) int64 {
	unitPrice, _ := catalog.UnitPrice(holding.Symbol)
	return unitPrice * holding.Quantity
}

// TotalValue returns the sum of LineValue over the holdings.
//
// TotalValue never fails. Symbols absent from the catalog contribute 0; call
// CheckHoldings first to reject them instead.
func TotalValue(catalog *stockctlcatalog.Catalog, holdings []Holding) int64 {
	var total int64
	for _, holding := range holdings {
		total += LineValue(catalog, holding)
	}
	return total
}

// CheckHoldings returns an error naming every holding symbol absent from the catalog.
func CheckHoldings(catalog *stockctlcatalog.Catalog, holdings []Holding) error {
	var unknown []string
	for _, holding := range holdings {
		if _, ok := catalog.Lookup(holding.Symbol); !ok {
			unknown = append(unknown, holding.Symbol)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown symbols not in catalog: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// WriteSummary writes the summary report for the holdings in order and returns the total.
func WriteSummary(writer io.Writer, catalog *stockctlcatalog.Catalog, holdings []Holding) (int64, error) {
	var builder strings.Builder
	builder.WriteString(summaryHeader)
	builder.WriteString("\n")
	for _, holding := range holdings {
		fmt.Fprintf(&builder, "%s, quantity: %d, value: Tshs%d\n", holding.Symbol, holding.Quantity, LineValue(catalog, holding))
	}
	total := TotalValue(catalog, holdings)
	fmt.Fprintf(&builder, "\n%s%d\n", summaryTotalPrefix, total)
	if _, err := io.WriteString(writer, builder.String()); err != nil {
		return 0, err
	}
	return total, nil
}

// ExportSummary overwrites destinationPath with the summary report and returns the total.
//
// The destination directory must already exist.
func ExportSummary(catalog *stockctlcatalog.Catalog, holdings []Holding, destinationPath string) (int64, error) {
	var total int64
	if err := xos.ForWriteFile(destinationPath, func(writer io.Writer) error {
		var err error
		total, err = WriteSummary(writer, catalog, holdings)
		return err
	}); err != nil {
		return 0, fmt.Errorf("exporting portfolio summary to %s: %w", destinationPath, err)
	}
	return total, nil
}

// Summary is a parsed summary report.
type Summary struct {
	// Lines are the per-symbol lines in file order.
	Lines []SummaryLine
	// Total is the printed total.
	Total int64
}

// SummaryLine is a single per-symbol line of a summary report.
type SummaryLine struct {
	Symbol   string
	Quantity int64
	Value    int64
}

// Verify checks that quantities are positive, values are non-negative, and the
// per-line values sum to the printed total without overflowing.
func (s *Summary) Verify() error {
	var sum int64
	for _, line := range s.Lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("%s has non-positive quantity %d", line.Symbol, line.Quantity)
		}
		if line.Value < 0 {
			return fmt.Errorf("%s has negative value %d", line.Symbol, line.Value)
		}
		if line.Value > math.MaxInt64-sum {
			return fmt.Errorf("summary lines sum past %d", int64(math.MaxInt64))
		}
		sum += line.Value
	}
	if sum != s.Total {
		return fmt.Errorf("summary lines sum to %d but total is %d", sum, s.Total)
	}
	return nil
}

// ParseSummary parses a summary report written by WriteSummary.
func ParseSummary(reader io.Reader) (*Summary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || lines[0] != summaryHeader {
		return nil, fmt.Errorf("summary must start with %q", summaryHeader)
	}
	summary := &Summary{}
	i := 1
	for ; i < len(lines) && lines[i] != ""; i++ {
		line, err := parseSummaryLine(lines[i])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		summary.Lines = append(summary.Lines, line)
	}
	// Skip the blank separator line.
	i++
	if i >= len(lines) || !strings.HasPrefix(lines[i], summaryTotalPrefix) {
		return nil, errors.New("summary has no total line")
	}
	if _, err := fmt.Sscanf(strings.TrimPrefix(lines[i], summaryTotalPrefix), "%d", &summary.Total); err != nil {
		return nil, fmt.Errorf("line %d: invalid total: %w", i+1, err)
	}
	return summary, nil
}

func parseSummaryLine(s string) (SummaryLine, error) {
	symbol, rest, ok := strings.Cut(s, ", ")
	if !ok || symbol == "" {
		return SummaryLine{}, fmt.Errorf("malformed summary line %q", s)
	}
	line := SummaryLine{Symbol: symbol}
	if _, err := fmt.Sscanf(rest, "quantity: %d, value: Tshs%d", &line.Quantity, &line.Value); err != nil {
		return SummaryLine{}, fmt.Errorf("malformed summary line %q: %w", s, err)
	}
	return line, nil
}
