package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"crate/internal/domain"
	"crate/internal/shell"
)

// WhoamiCommand prints the identity of the current session.
type WhoamiCommand struct {
	out io.Writer
}

// NewWhoamiCommand creates a new whoami command.
func NewWhoamiCommand(out io.Writer) *WhoamiCommand {
	return &WhoamiCommand{out: out}
}

// Handle is the prompt entry point: whoami.
func (c *WhoamiCommand) Handle(_ context.Context, session *domain.Session, _ []string) error {
	roles := "none"
	if session.HasRoles() {
		roles = strings.Join(session.Roles, ", ")
	}

	fmt.Fprintf(c.out, "Username: %s\nSession:  %s\nRoles:    %s\n", session.Username, session.SessionID, roles)
	return nil
}

// Definition describes the command for the registry.
func (c *WhoamiCommand) Definition() shell.Command {
	return shell.Command{
		Name:             "whoami",
		Handler:          c.Handle,
		ShortDescription: "shows the logged in user and session",
	}
}
