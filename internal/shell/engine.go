package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"

	"crate/internal/domain"
	"crate/internal/errors"
)

// Engine reads command lines and routes them to the built-in commands or
// the registry until the operator quits.
type Engine struct {
	registry *Registry
	reader   domain.CommandReader
	out      io.Writer
	logger   *slog.Logger
	styles   helpStyles
}

// NewEngine creates an engine writing command output to out.
func NewEngine(registry *Registry, reader domain.CommandReader, out io.Writer, logger *slog.Logger) *Engine {
	return &Engine{
		registry: registry,
		reader:   reader,
		out:      out,
		logger:   logger,
		styles:   newHelpStyles(out),
	}
}

// Run executes the read-dispatch loop for session. It returns nil when the
// operator quits or input ends, and an error when reading input fails or ctx
// is done.
func (e *Engine) Run(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return errors.NewValidationError("session", "", "required", "command loop needs an authenticated session")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tokens, err := e.reader.ReadCommandLine(ctx)
		if err != nil {
			if errors.IsCancelled(err) {
				e.shutdown()
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		if !e.Dispatch(ctx, session, tokens) {
			e.shutdown()
			return nil
		}
	}
}

// Dispatch handles one tokenized line and reports whether the loop should
// continue. A line without tokens is ignored.
func (e *Engine) Dispatch(ctx context.Context, session *domain.Session, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	name, args := tokens[0], tokens[1:]
	switch normalize(name) {
	case QuitCommand:
		return false
	case HelpCommand:
		e.help(args)
		return true
	}

	cmd, ok := e.registry.Lookup(name)
	if !ok {
		e.unknown(name)
		return true
	}

	e.logger.DebugContext(ctx, "Running command", "command", cmd.Name, "args", len(args))
	if err := e.invoke(ctx, cmd, session, args); err != nil {
		e.logger.ErrorContext(ctx, "Command failed", "command", cmd.Name, "error", err)
		fmt.Fprintf(e.out, "Error: %v\n", err)
	}
	return true
}

// invoke runs the handler and converts a panic into an error.
func (e *Engine) invoke(ctx context.Context, cmd Command, session *domain.Session, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.ErrorContext(ctx, "Command panicked",
				"command", cmd.Name,
				"panic", r,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("command %q crashed: %v", cmd.Name, r)
		}
	}()
	return cmd.Handler(ctx, session, args)
}

func (e *Engine) unknown(name string) {
	fmt.Fprintf(e.out, "Unknown command %q. Type %q for a list of commands.\n", name, HelpCommand)
}

func (e *Engine) shutdown() {
	fmt.Fprintln(e.out, "Shutting down.")
}

// help prints every command, or only the commands named in args.
func (e *Engine) help(args []string) {
	entries := e.helpEntries()
	if len(args) == 0 {
		for _, entry := range entries {
			e.printEntry(entry)
		}
		return
	}

	for _, name := range args {
		found := false
		for _, entry := range entries {
			if strings.EqualFold(entry.Name, name) {
				e.printEntry(entry)
				found = true
				break
			}
		}
		if !found {
			e.unknown(name)
		}
	}
}

// helpEntries lists the built-in commands followed by the registry.
func (e *Engine) helpEntries() []Command {
	builtins := []Command{
		{
			Name:             HelpCommand,
			ShortDescription: "displays this list",
			ArgDescriptions:  []string{"[command] - show only the given command"},
		},
		{
			Name:             QuitCommand,
			ShortDescription: "exits the program",
		},
	}
	return append(builtins, e.registry.Commands()...)
}
