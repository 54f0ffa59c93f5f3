// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package cataloglist implements the "catalog list" command.
package cataloglist

import (
	"context"
	"slices"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/stockctlcmd"
	"github.com/bufdev/stockctl/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// formatFlagName is the flag name for the output format.
const formatFlagName = "format"

// NewCommand returns a new catalog list command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "List stocks with their unit prices",
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
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	stockctlcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringVar(&f.Format, formatFlagName, "table", "Output format (table, csv, json)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	config, err := stockctlcmd.ReadConfig(container, flags.Dir, "")
	if err != nil {
		return err
	}
	writer := container.Stdout()
	switch format {
	case cliio.FormatTable:
		var rows [][]string
		for entry := range config.Catalog.All() {
			rows = append(rows, []string{entry.Symbol, entry.Name, cliio.FormatTshs(entry.UnitPrice)})
		}
		return cliio.WriteTable(writer, []string{"SYMBOL", "COMPANY", "PRICE"}, rows)
	case cliio.FormatCSV:
		records := [][]string{{"symbol", "name", "unit_price"}}
		for entry := range config.Catalog.All() {
			records = append(records, []string{entry.Symbol, entry.Name, strconv.FormatInt(entry.UnitPrice, 10)})
		}
		return cliio.WriteCSVRecords(writer, records)
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, slices.Collect(config.Catalog.All())...)
	default:
		return appcmd.NewInvalidArgumentErrorf("unsupported format: %s", format)
	}
}
