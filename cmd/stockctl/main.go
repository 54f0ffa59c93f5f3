// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/catalog"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/config"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/summary"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/track"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/value"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("stockctl"))
}

// newRootCommand creates the root stockctl command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Track a stock portfolio against a fixed price catalog",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			catalog.NewCommand("catalog", builder),
			config.NewCommand("config", builder),
			summary.NewCommand("summary", builder),
			track.NewCommand("track", builder),
			value.NewCommand("value", builder),
		},
	}
}
