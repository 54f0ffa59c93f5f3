// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package summary implements the "summary" command group.
package summary

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/stockctl/cmd/stockctl/internal/command/summary/summaryverify"
)

// NewCommand returns a new summary command group.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Work with saved portfolio summaries",
		SubCommands: []*appcmd.Command{
			summaryverify.NewCommand("verify", builder),
		},
	}
}
