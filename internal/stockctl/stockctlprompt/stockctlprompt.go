// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package stockctlprompt implements the sequential prompt loop front end.
//
// The loop moves through the states
//
//	CollectingCount -> CollectingEntries -> Summarizing -> Exporting -> Done
//
// A malformed count goes straight to Done with nothing collected or exported.
package stockctlprompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bufdev/stockctl/internal/stockctl/stockctlcatalog"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlportfolio"
	"github.com/bufdev/stockctl/internal/stockctl/stockctlvalue"
)

// State is a state of the prompt loop.
type State int

const (
	// StateCollectingCount reads the number of entries to collect.
	StateCollectingCount State = iota + 1
	// StateCollectingEntries reads symbol and quantity pairs.
	StateCollectingEntries
	// StateSummarizing prints the portfolio summary.
	StateSummarizing
	// StateExporting writes the summary file.
	StateExporting
	// StateDone is terminal.
	StateDone
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateCollectingCount:
		return "collecting_count"
	case StateCollectingEntries:
		return "collecting_entries"
	case StateSummarizing:
		return "summarizing"
	case StateExporting:
		return "exporting"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the outcome of a completed prompt loop.
type Result struct {
	// Portfolio is the accumulated portfolio.
	Portfolio *stockctlportfolio.Portfolio
	// Total is the total value of the portfolio.
	Total int64
	// Exported is true if the summary file was written.
	Exported bool
	// ExportErr is the error from writing the summary file, if any.
	ExportErr error
}

// Loop is a single run of the prompt loop.
type Loop struct {
	logger         *slog.Logger
	catalog        *stockctlcatalog.Catalog
	scanner        *bufio.Scanner
	writer         io.Writer
	exportFilePath string

	state     State
	remaining int
	portfolio *stockctlportfolio.Portfolio
	result    *Result
}

// NewLoop returns a new Loop that reads answers from reader and writes prompts to writer.
//
// The summary is exported to exportFilePath.
func NewLoop(
	logger *slog.Logger,
	catalog *stockctlcatalog.Catalog,
	reader io.Reader,
	writer io.Writer,
	exportFilePath string,
) *Loop {
	return &Loop{
		logger:         logger,
		catalog:        catalog,
		scanner:        bufio.NewScanner(reader),
		writer:         writer,
		exportFilePath: exportFilePath,
		state:          StateCollectingCount,
		portfolio:      stockctlportfolio.NewPortfolio(catalog),
	}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Run runs the loop until Done and returns the result.
//
// Input errors and export errors are reported to the writer and do not fail
// Run. Run returns an error if the context is cancelled or writing to the
// writer fails.
func (l *Loop) Run(ctx context.Context) (*Result, error) {
	if err := l.printWelcome(); err != nil {
		return nil, err
	}
	l.result = &Result{Portfolio: l.portfolio}
	for l.state != StateDone {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		previous := l.state
		if err := l.step(); err != nil {
			return nil, err
		}
		if l.state != previous {
			l.logger.Debug("prompt state transition", "from", previous.String(), "to", l.state.String())
		}
	}
	return l.result, nil
}

func (l *Loop) step() error {
	switch l.state {
	case StateCollectingCount:
		return l.collectCount()
	case StateCollectingEntries:
		return l.collectEntry()
	case StateSummarizing:
		return l.summarize()
	case StateExporting:
		return l.export()
	default:
		return fmt.Errorf("unexpected prompt state %v", l.state)
	}
}

func (l *Loop) printWelcome() error {
	if err := l.println("WELCOME TO STOCK PORTFOLIO TRACKER"); err != nil {
		return err
	}
	if err := l.println("Available stocks and their prices:\n"); err != nil {
		return err
	}
	for entry := range l.catalog.All() {
		if err := l.println(fmt.Sprintf("%s @Tshs %d", entry.Symbol, entry.UnitPrice)); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) collectCount() error {
	answer, ok, err := l.ask("\nHow many different stocks do you want to invest? ")
	if err != nil {
		return err
	}
	count, parseErr := strconv.Atoi(answer)
	if !ok || parseErr != nil {
		l.state = StateDone
		return l.println("Invalid number, exiting.")
	}
	l.remaining = max(count, 0)
	l.state = StateCollectingEntries
	return nil
}

func (l *Loop) collectEntry() error {
	if l.remaining == 0 {
		l.state = StateSummarizing
		return nil
	}
	l.remaining--
	answer, ok, err := l.ask("Enter stock name: ")
	if err != nil {
		return err
	}
	if !ok {
		l.logger.Debug("input ended while collecting entries", "remaining", l.remaining)
		l.state = StateSummarizing
		return nil
	}
	symbol := stockctlcatalog.NormalizeSymbol(answer)
	if _, found := l.catalog.Lookup(symbol); !found {
		return l.println("Stock not available, please choose from the available stocks.")
	}
	answer, ok, err = l.ask("Enter quantity to buy: ")
	if err != nil {
		return err
	}
	if !ok {
		l.state = StateSummarizing
		return nil
	}
	quantity, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return l.println("Invalid quantity, skipping.")
	}
	if err := l.portfolio.Add(symbol, quantity); err != nil {
		if errors.Is(err, stockctlportfolio.ErrInvalidQuantity) {
			return l.println("Invalid quantity, skipping.")
		}
		return err
	}
	return nil
}

func (l *Loop) summarize() error {
	if err := l.println("\nYOUR PORTFOLIO SUMMARY"); err != nil {
		return err
	}
	for _, holding := range l.portfolio.Holdings() {
		value := stockctlvalue.LineValue(l.catalog, holding)
		if err := l.println(fmt.Sprintf("%s quantity: %d \nStock value %d", holding.Symbol, holding.Quantity, value)); err != nil {
			return err
		}
	}
	l.result.Total = l.portfolio.TotalValue()
	if err := l.println(fmt.Sprintf("\nTotal Investment value: Tshs %d", l.result.Total)); err != nil {
		return err
	}
	l.state = StateExporting
	return nil
}

func (l *Loop) export() error {
	l.state = StateDone
	if _, err := stockctlvalue.ExportSummary(l.catalog, l.portfolio.Holdings(), l.exportFilePath); err != nil {
		l.result.ExportErr = err
		l.logger.Warn("could not export portfolio summary", "path", l.exportFilePath, "error", err)
		return l.println(fmt.Sprintf("Could not save portfolio: %v", err))
	}
	l.result.Exported = true
	return l.println(fmt.Sprintf("Portfolio saved to %s", l.exportFilePath))
}

// ask writes the prompt and returns the trimmed answer.
//
// ok is false if the input has ended.
func (l *Loop) ask(prompt string) (string, bool, error) {
	if _, err := io.WriteString(l.writer, prompt); err != nil {
		return "", false, err
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", false, fmt.Errorf("reading input: %w", err)
		}
		return "", false, nil
	}
	return strings.TrimSpace(l.scanner.Text()), true, nil
}

func (l *Loop) println(s string) error {
	_, err := fmt.Fprintln(l.writer, s)
	return err
}
