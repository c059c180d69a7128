package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/atotto/clipboard"
)

type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

type App struct {
	engine   service.VaultEngine
	workers  *workers.Workers
	term     Terminal
	out      io.Writer
	commands map[string]command

	clip func(string) error
	now  func() time.Time

	logger *logger.Logger
}

func NewApp(engine service.VaultEngine, w *workers.Workers, t Terminal, out io.Writer, log *logger.Logger) *App {
	a := &App{
		engine:  engine,
		workers: w,
		term:    t,
		out:     out,
		clip:    clipboard.WriteAll,
		now:     time.Now,
		logger:  log,
	}
	a.commands = a.commandTable()
	return a
}

// Run reads and executes commands until quit, end of input or ctx is done.
// The engine is locked on the way out.
func (a *App) Run(ctx context.Context) error {
	if a.workers != nil {
		a.workers.Run(ctx)
	}
	defer a.engine.Lock()

	fmt.Fprintln(a.out, "type 'help' for a list of commands")
	for ctx.Err() == nil {
		fmt.Fprint(a.out, a.prompt())

		line, err := a.term.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		if err = a.Execute(ctx, fields[0], fields[1:]); err != nil {
			a.logger.Debug().Err(err).Str("func", "*App.Run").Str("command", fields[0]).Msg("command failed")
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
	return nil
}

// Execute runs a single command.
func (a *App) Execute(ctx context.Context, name string, args []string) error {
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q, try 'help'", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}
	return cmd.run(ctx, args)
}

func (a *App) prompt() string {
	if a.engine.IsLocked() {
		return "vault (locked)> "
	}
	return "vault> "
}

func (a *App) help(context.Context, []string) error {
	usages := make([]string, 0, len(a.commands)+1)
	for _, cmd := range a.commands {
		usages = append(usages, cmd.usage)
	}
	usages = append(usages, "quit")
	slices.Sort(usages)

	for _, u := range usages {
		fmt.Fprintln(a.out, "  "+u)
	}
	return nil
}

// newPassword asks for a password twice.
func (a *App) newPassword(prompt string) (string, error) {
	first, err := a.term.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	second, err := a.term.ReadPassword("repeat: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrPasswordsDontMatch
	}
	return first, nil
}

func (a *App) confirm(what string) error {
	fmt.Fprintf(a.out, "%s, type 'yes' to confirm: ", what)
	line, err := a.term.ReadLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) != "yes" {
		return ErrNotConfirmed
	}
	return nil
}
