// Copyright 2026 Peter Edge
//
// All rights reserved.

package stockctlform

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bufdev/stockctl/internal/pkg/cliio"
)

const sessionHelp = `Commands:
  add [SYMBOL [QUANTITY]]  Add the selection (optionally selecting first)
  remove SYMBOL            Remove a line from the portfolio
  select SYMBOL            Select a stock
  qty QUANTITY             Set the quantity (1 to 1000000)
  save [PATH]              Save the portfolio summary
  catalog                  List the available stocks
  show                     Show the portfolio
  help                     Show this help
  quit                     Exit`

// Session drives a Form from line-oriented commands.
type Session struct {
	logger                *slog.Logger
	form                  *Form
	scanner               *bufio.Scanner
	writer                io.Writer
	defaultExportFilePath string
}

// NewSession returns a new Session reading commands from reader and rendering to writer.
//
// "save" without a path writes to defaultExportFilePath.
func NewSession(
	logger *slog.Logger,
	form *Form,
	reader io.Reader,
	writer io.Writer,
	defaultExportFilePath string,
) *Session {
	return &Session{
		logger:                logger,
		form:                  form,
		scanner:               bufio.NewScanner(reader),
		writer:                writer,
		defaultExportFilePath: defaultExportFilePath,
	}
}

// Run processes commands until "quit" or the end of input.
//
// Errors from individual commands are printed and the session continues. Run
// returns an error only if the context is cancelled or writing fails.
func (s *Session) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(s.writer, "Stock Portfolio Tracker"); err != nil {
		return err
	}
	view := s.form.View()
	if err := RenderCatalog(s.writer, view); err != nil {
		return err
	}
	if err := s.println(""); err != nil {
		return err
	}
	if err := RenderPortfolio(s.writer, view); err != nil {
		return err
	}
	if err := s.println(`Type "help" for commands.`); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(s.writer, "> "); err != nil {
			return err
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return s.println("")
		}
		quit, err := s.handle(strings.Fields(s.scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handle runs a single command. It returns true if the session should end.
func (s *Session) handle(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	case "quit", "exit":
		return true, nil
	case "help":
		return false, s.println(sessionHelp)
	case "catalog":
		return false, RenderCatalog(s.writer, s.form.View())
	case "show":
		return false, RenderPortfolio(s.writer, s.form.View())
	case "select":
		if len(args) != 1 {
			return false, s.printError("usage: select SYMBOL")
		}
		if err := s.form.Select(args[0]); err != nil {
			return false, s.printError(err.Error())
		}
		return false, RenderPortfolio(s.writer, s.form.View())
	case "qty", "quantity":
		if len(args) != 1 {
			return false, s.printError("usage: qty QUANTITY")
		}
		if err := s.setQuantity(args[0]); err != nil {
			return false, s.printError(err.Error())
		}
		return false, RenderPortfolio(s.writer, s.form.View())
	case "add":
		return false, s.add(args)
	case "remove", "rm":
		if len(args) != 1 {
			return false, s.printError("usage: remove SYMBOL")
		}
		s.form.Remove(args[0])
		s.logger.Debug("removed from portfolio", "symbol", args[0])
		return false, RenderPortfolio(s.writer, s.form.View())
	case "save":
		return false, s.save(args)
	default:
		return false, s.printError(fmt.Sprintf("unknown command %q, type \"help\" for commands", command))
	}
}

func (s *Session) add(args []string) error {
	if len(args) > 2 {
		return s.printError("usage: add [SYMBOL [QUANTITY]]")
	}
	if len(args) > 0 {
		if err := s.form.Select(args[0]); err != nil {
			return s.printError(err.Error())
		}
	}
	if len(args) > 1 {
		if err := s.setQuantity(args[1]); err != nil {
			return s.printError(err.Error())
		}
	}
	if err := s.form.Add(); err != nil {
		return s.printError(err.Error())
	}
	selection := s.form.Selection()
	s.logger.Debug("added to portfolio", "symbol", selection.Symbol, "quantity", selection.Quantity)
	return RenderPortfolio(s.writer, s.form.View())
}

func (s *Session) save(args []string) error {
	if len(args) > 1 {
		return s.printError("usage: save [PATH]")
	}
	filePath := s.defaultExportFilePath
	if len(args) == 1 {
		filePath = args[0]
	}
	total, err := s.form.Save(filePath)
	if err != nil {
		s.logger.Warn("could not export portfolio summary", "path", filePath, "error", err)
		return s.printError(fmt.Sprintf("could not save portfolio: %v", err))
	}
	return s.println(fmt.Sprintf("Portfolio saved to %s\nTotal: %s", filePath, cliio.FormatTshs(total)))
}

func (s *Session) setQuantity(arg string) error {
	quantity, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("please enter a valid integer quantity, got %q", arg)
	}
	return s.form.SetQuantity(quantity)
}

func (s *Session) printError(message string) error {
	return s.println("error: " + message)
}

func (s *Session) println(line string) error {
	_, err := fmt.Fprintln(s.writer, line)
	return err
}
