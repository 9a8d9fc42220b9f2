package app

import (
	"fmt"

	"crate/internal/commands"
	"crate/internal/shell"
)

// NewShell builds the command loop for a session against baseURL with every
// prompt command registered.
func (a *App) NewShell(baseURL string) (*shell.Engine, error) {
	registry := shell.NewRegistry()

	defs := []shell.Command{
		commands.NewSearchCommand(a.Catalog, a.Prompter, baseURL, a.Out, a.Logger).Definition(),
		commands.NewShowCommand(a.Catalog, baseURL, a.Out, a.Logger).Definition(),
		commands.NewWhoamiCommand(a.Out).Definition(),
	}
	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return nil, fmt.Errorf("failed to register command %q: %w", def.Name, err)
		}
	}

	return shell.NewEngine(registry, a.Prompter, a.Out, a.Logger), nil
}
