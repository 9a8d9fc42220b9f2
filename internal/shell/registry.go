// Package shell implements the interactive command loop: a registry of named
// commands and the engine that reads lines and dispatches them.
package shell

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"crate/internal/domain"
	"crate/internal/errors"
)

// Names of the built-in commands. They are resolved before the registry and
// cannot be registered.
const (
	HelpCommand = "help"
	QuitCommand = "quit"
)

// HandlerFunc runs a command with the authenticated session and the tokens
// that followed the command name.
type HandlerFunc func(ctx context.Context, session *domain.Session, args []string) error

// Command is a named operation available at the prompt.
type Command struct {
	Name             string
	Handler          HandlerFunc
	ArgDescriptions  []string
	ShortDescription string
}

// Registry holds commands in registration order. Names are unique and
// compared case-insensitively.
type Registry struct {
	commands []Command
	index    map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register adds cmd after the commands registered so far.
func (r *Registry) Register(cmd Command) error {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return errors.NewValidationError("name", cmd.Name, "non_empty", "command name must not be empty")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.NewValidationError("name", cmd.Name, "single_word", "command name must be a single word")
	}
	if cmd.Handler == nil {
		return errors.NewValidationError("handler", name, "required", fmt.Sprintf("command %q has no handler", name))
	}

	key := normalize(name)
	if key == HelpCommand || key == QuitCommand {
		return fmt.Errorf("%w: %q is a built-in command", errors.ErrDuplicateCommand, name)
	}
	if _, exists := r.index[key]; exists {
		return fmt.Errorf("%w: %q is already registered", errors.ErrDuplicateCommand, name)
	}

	cmd.Name = name
	cmd.ArgDescriptions = append([]string(nil), cmd.ArgDescriptions...)
	r.index[key] = len(r.commands)
	r.commands = append(r.commands, cmd)
	return nil
}

// Lookup finds a registered command by name, ignoring case.
func (r *Registry) Lookup(name string) (Command, bool) {
	i, ok := r.index[normalize(name)]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

func normalize(name string) string {
	return strings.ToLower(name)
}
