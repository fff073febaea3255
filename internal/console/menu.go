// Package console implements the interactive numbered menu used to manage
// the van's cargo.
package console

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"coffee-van/internal/model"
	"coffee-van/internal/service"

	"github.com/rs/zerolog"
)

type option struct {
	title string
	run   func(ctx context.Context) error
	exit  bool
}

// Menu drives the van through numbered commands read from its input.
type Menu struct {
	svc     service.VanService
	prompt  *prompter
	ids     model.IDGenerator
	options []option
	logger  zerolog.Logger
}

// NewMenu creates a menu reading commands from in and writing to out.
// ids supplies identifiers for products entered by hand; nil selects UUIDs.
func NewMenu(svc service.VanService, in io.Reader, out io.Writer, ids model.IDGenerator, logger zerolog.Logger) *Menu {
	if ids == nil {
		ids = model.UUIDGenerator{}
	}
	m := &Menu{
		svc:    svc,
		prompt: newPrompter(in, out),
		ids:    ids,
		logger: logger.With().Str("component", "console").Logger(),
	}
	m.options = []option{
		{title: "Load van", run: m.loadVan},
		{title: "Show coffee", run: m.showCargo},
		{title: "Sort coffee", run: m.sortCargo},
		{title: "Delete coffee by id", run: m.removeByID},
		{title: "Find coffee by quality", run: m.findByQuality},
		{title: "Check remaining budget", run: m.remainingBudget},
		{title: "Check remaining volume", run: m.remainingVolume},
		{title: "Count total price", run: m.totalPrice},
		{title: "Get data from file", run: m.loadFromFile},
		{title: "Save data to file", run: m.saveToFile},
		{title: "Exit", exit: true},
	}
	return m
}

// Run shows the menu and executes commands until the user exits, the input
// ends or ctx is cancelled, including while waiting for input. Command
// failures are reported and the loop goes on.
func (m *Menu) Run(ctx context.Context) error {
	m.prompt.println("Welcome back!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printOptions()
		input, err := m.prompt.readLine(ctx, "Your choice: ")
		if errors.Is(err, io.EOF) {
			m.logger.Debug().Msg("input closed")
			return nil
		}
		if err != nil {
			return err
		}

		opt, ok := m.lookup(input)
		if !ok {
			m.prompt.println("Wrong choice! Try again.")
			continue
		}

		if opt.exit {
			m.prompt.println("The program has finished working!")
			return nil
		}

		if err := opt.run(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if errors.Is(err, io.EOF) {
				m.logger.Debug().Str("command", opt.title).Msg("input closed during command")
				return nil
			}
			m.logger.Error().Err(err).Str("command", opt.title).Msg("command failed")
			m.prompt.printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) printOptions() {
	m.prompt.println()
	m.prompt.println("Menu:")
	for i, opt := range m.options {
		m.prompt.printf("%d. %s\n", i+1, opt.title)
	}
}

func (m *Menu) lookup(input string) (option, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(m.options) {
		return option{}, false
	}
	return m.options[n-1], true
}
