// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package summaryverify implements the "summary verify" command.
package summaryverify

import (
	"context"
	"fmt"
	"io"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/internal/pkg/cliio"
	"github.com/bufdev/stockctl/internal/standard/xos"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
	"github.com/spf13/pflag"
)

// fileFlagName is the flag name for the summary file path.
const fileFlagName = "file"

// NewCommand returns a new summary verify command that checks a saved summary's total.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Check that a saved summary's line values add up to its total",
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
	// File is the summary file path.
	File string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.File, fileFlagName, stockctlvalue.DefaultSummaryFileName, "The summary file path")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	if flags.File == "" {
		return appcmd.NewInvalidArgumentErrorf("--%s is required", fileFlagName)
	}
	filePath, err := xos.ExpandHome(flags.File)
	if err != nil {
		return err
	}
	var summary *stockctlvalue.Summary
	if err := xos.ForReadFile(filePath, func(reader io.Reader) error {
		var err error
		summary, err = stockctlvalue.ParseSummary(reader)
		return err
	}); err != nil {
		return fmt.Errorf("reading summary %s: %w", filePath, err)
	}
	if err := summary.Verify(); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	_, err = fmt.Fprintf(
		container.Stdout(),
		"%s: %d lines, total %s\n",
		filePath,
		len(summary.Lines),
		cliio.FormatTshs(summary.Total),
	)
	return err
}
