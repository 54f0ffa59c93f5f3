// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package track implements the "track" command.
package track

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/stockctlcmd"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlconfig"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlform"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlprompt"
	"github.com/spf13/pflag"
)

// frontendFlagName is the flag name for the interactive front end.
const frontendFlagName = "frontend"

// NewCommand returns a new track command that runs an interactive front end.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Build a portfolio interactively and save its summary",
		Long: `Build a portfolio interactively and save its summary.

The "form" front end accepts add, remove, select, qty, and save commands and
shows the running total after every change. The "prompt" front end asks for a
number of stocks and then for each symbol and quantity in turn, and saves the
summary at the end.`,
		Args: appcmd.NoArgs,
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
	// Frontend overrides the configured front end.
	Frontend string
	// Output overrides the configured export path.
	Output string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	stockctlcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringVar(&f.Frontend, frontendFlagName, "", "The front end to run (form, prompt), defaults to the configured front end")
	flagSet.StringVar(&f.Output, stockctlcmd.OutputFlagName, "", "The summary file path, defaults to the configured export file")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	config, err := stockctlcmd.ReadConfig(container, flags.Dir, flags.Output)
	if err != nil {
		return err
	}
	// The front end is chosen once here; there is no fallback between front ends.
	frontend := config.Frontend
	if flags.Frontend != "" {
		frontend, err = stockctlconfig.ParseFrontend(flags.Frontend)
		if err != nil {
			return appcmd.NewInvalidArgumentError(err.Error())
		}
	}
	logger := container.Logger()
	logger.Debug("starting front end", "frontend", string(frontend))
	switch frontend {
	case stockctlconfig.FrontendPrompt:
		loop := stockctlprompt.NewLoop(logger, config.Catalog, container.Stdin(), container.Stdout(), config.ExportFilePath)
		_, err := loop.Run(ctx)
		return err
	case stockctlconfig.FrontendForm:
		form := stockctlform.NewForm(config.Catalog)
		return stockctlform.NewSession(logger, form, container.Stdin(), container.Stdout(), config.ExportFilePath).Run(ctx)
	default:
		return fmt.Errorf("unsupported frontend: %s", frontend)
	}
}
