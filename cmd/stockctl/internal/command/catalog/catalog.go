// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package catalog implements the "catalog" command group.
package catalog

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/catalog/cataloglist"
)

// NewCommand returns a new catalog command group.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Display the catalog of tradable stocks",
		SubCommands: []*appcmd.Command{
			cataloglist.NewCommand("list", builder),
		},
	}
}
