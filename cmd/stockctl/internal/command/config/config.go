// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package config implements the "config" command group.
package config

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/config/configedit"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/config/configinit"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/config/configvalidate"
)

// NewCommand returns a new config command group with init, edit, and validate sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Manage stockctl configuration",
		Long: `Manage stockctl.yaml in the stockctl directory.

stockctl.yaml selects the "track" front end with frontend, sets the summary
file with export.file, and may replace the built-in 26-symbol catalog with
its own catalog list. Without a stockctl.yaml every command runs with the
defaults.`,
		SubCommands: []*appcmd.Command{
			configinit.NewCommand("init", builder),
			configedit.NewCommand("edit", builder),
			configvalidate.NewCommand("validate", builder),
		},
	}
}
