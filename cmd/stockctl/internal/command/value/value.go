// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package value implements the "value" command.
package value

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/stockctlcmd"
	"github.com/bufdev/stockctl/internal/pkg/cliio"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlportfolio"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
	"github.com/spf13/pflag"
)

const (
	// holdingFlagName is the flag name for a SYMBOL=QUANTITY holding.
	holdingFlagName = "holding"
	// strictFlagName is the flag name for rejecting unknown symbols.
	strictFlagName = "strict"
	// formatFlagName is the flag name for the output format.
	formatFlagName = "format"
	// exportFlagName is the flag name for writing the summary file.
	exportFlagName = "export"
)

// NewCommand returns a new value command that values holdings given on the command line.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Compute the value of holdings given as SYMBOL=QUANTITY",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the base directory containing stockctl.yaml.
	Dir string
	// Holdings are the SYMBOL=QUANTITY pairs.
	Holdings []string
	// Strict fails on symbols not in the catalog instead of valuing them at zero.
	Strict bool
	// Format is the output format (table, csv, json).
	Format string
	// Export writes the summary file.
	Export bool
	// Output overrides the configured export path.
	Output string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	stockctlcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringArrayVar(&f.Holdings, holdingFlagName, nil, "A holding as SYMBOL=QUANTITY, may be repeated")
	flagSet.BoolVar(&f.Strict, strictFlagName, false, "Fail on symbols not in the catalog instead of valuing them at zero")
	flagSet.StringVar(&f.Format, formatFlagName, "table", "Output format (table, csv, json)")
	flagSet.BoolVar(&f.Export, exportFlagName, false, "Also write the portfolio summary file")
	flagSet.StringVar(&f.Output, stockctlcmd.OutputFlagName, "", "The summary file path, defaults to the configured export file")
}

// holdingRow is a single valued holding for JSON output.
type holdingRow struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name,omitempty"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Value     int64  `json:"value"`
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	if len(flags.Holdings) == 0 {
		return appcmd.NewInvalidArgumentErrorf("at least one --%s is required", holdingFlagName)
	}
	holdings, err := parseHoldings(flags.Holdings)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	config, err := stockctlcmd.ReadConfig(container, flags.Dir, flags.Output)
	if err != nil {
		return err
	}
	catalog := config.Catalog
	logger := container.Logger()
	if err := stockctlvalue.CheckHoldings(catalog, holdings); err != nil {
		if flags.Strict {
			return err
		}
		logger.Warn("unknown symbols are valued at zero", "error", err)
	}
	// Accumulate repeated symbols the same way the interactive front ends do.
	holdings, err = accumulate(catalog, holdings)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	rows := make([]holdingRow, 0, len(holdings))
	for _, holding := range holdings {
		entry, _ := catalog.Lookup(holding.Symbol)
		rows = append(rows, holdingRow{
			Symbol:    holding.Symbol,
			Name:      entry.Name,
			Quantity:  holding.Quantity,
			UnitPrice: entry.UnitPrice,
			Value:     stockctlvalue.LineValue(catalog, holding),
		})
	}
	total := stockctlvalue.TotalValue(catalog, holdings)
	if flags.Export {
		if _, err := stockctlvalue.ExportSummary(catalog, holdings, config.ExportFilePath); err != nil {
			return err
		}
		logger.Info("saved portfolio summary", "path", config.ExportFilePath)
	}
	writer := container.Stdout()
	switch format {
	case cliio.FormatTable:
		tableRows := make([][]string, 0, len(rows))
		for _, row := range rows {
			tableRows = append(tableRows, []string{
				row.Symbol,
				row.Name,
				strconv.FormatInt(row.Quantity, 10),
				cliio.FormatTshs(row.UnitPrice),
				cliio.FormatTshs(row.Value),
			})
		}
		return cliio.WriteTableWithTotals(
			writer,
			[]string{"SYMBOL", "COMPANY", "QUANTITY", "UNIT PRICE", "VALUE"},
			tableRows,
			[]string{"TOTAL", "", "", "", cliio.FormatTshs(total)},
		)
	case cliio.FormatCSV:
		records := [][]string{{"symbol", "name", "quantity", "unit_price", "value"}}
		for _, row := range rows {
			records = append(records, []string{
				row.Symbol,
				row.Name,
				strconv.FormatInt(row.Quantity, 10),
				strconv.FormatInt(row.UnitPrice, 10),
				strconv.FormatInt(row.Value, 10),
			})
		}
		return cliio.WriteCSVRecords(writer, records)
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, rows...)
	default:
		return appcmd.NewInvalidArgumentErrorf("unsupported format: %s", format)
	}
}

// parseHoldings parses SYMBOL=QUANTITY pairs, normalizing symbols to uppercase.
func parseHoldings(values []string) ([]stockctlvalue.Holding, error) {
	holdings := make([]stockctlvalue.Holding, 0, len(values))
	for _, value := range values {
		symbol, quantityString, ok := strings.Cut(value, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --%s %q, must be SYMBOL=QUANTITY", holdingFlagName, value)
		}
		quantity, err := strconv.ParseInt(strings.TrimSpace(quantityString), 10, 64)
		if err != nil || quantity <= 0 {
			return nil, fmt.Errorf("invalid --%s %q, quantity must be a positive integer", holdingFlagName, value)
		}
		symbol = stockctlcatalog.NormalizeSymbol(symbol)
		if symbol == "" {
			return nil, fmt.Errorf("invalid --%s %q, symbol is required", holdingFlagName, value)
		}
		holdings = append(holdings, stockctlvalue.Holding{Symbol: symbol, Quantity: quantity})
	}
	return holdings, nil
}

// accumulate merges repeated symbols in first-seen order.
//
// Known symbols go through a Portfolio. Unknown symbols, which only reach here
// in non-strict mode, are merged alongside so that they still show as zero-value lines.
func accumulate(catalog *stockctlcatalog.Catalog, holdings []stockctlvalue.Holding) ([]stockctlvalue.Holding, error) {
	portfolio := stockctlportfolio.NewPortfolio(catalog)
	unknown := make(map[string]int64)
	var order []string
	for _, holding := range holdings {
		if _, ok := catalog.Lookup(holding.Symbol); ok {
			first := portfolio.Quantity(holding.Symbol) == 0
			if err := portfolio.Add(holding.Symbol, holding.Quantity); err != nil {
				return nil, fmt.Errorf("invalid --%s %s=%d: %w", holdingFlagName, holding.Symbol, holding.Quantity, err)
			}
			if first {
				order = append(order, holding.Symbol)
			}
			continue
		}
		existing, ok := unknown[holding.Symbol]
		if holding.Quantity > math.MaxInt64-existing {
			return nil, fmt.Errorf(
				"invalid --%s %s=%d: %w: total quantity is too large",
				holdingFlagName,
				holding.Symbol,
				holding.Quantity,
				stockctlportfolio.ErrInvalidQuantity,
			)
		}
		if !ok {
			order = append(order, holding.Symbol)
		}
		unknown[holding.Symbol] = existing + holding.Quantity
	}
	result := make([]stockctlvalue.Holding, 0, len(order))
	for _, symbol := range order {
		quantity, ok := unknown[symbol]
		if !ok {
			quantity = portfolio.Quantity(symbol)
		}
		result = append(result, stockctlvalue.Holding{Symbol: symbol, Quantity: quantity})
	}
	return result, nil
}
