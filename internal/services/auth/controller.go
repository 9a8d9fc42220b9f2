// Package auth runs the interactive login loop against the catalog service.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"crate/internal/domain"
	crateerrors "crate/internal/errors"
)

// RetryQuestion is asked after the service rejected the credentials.
const RetryQuestion = "Unknown username/password. Retry"

// Controller prompts for credentials until a login succeeds, the operator
// gives up, or the service fails in a way that retrying cannot fix.
type Controller struct {
	authenticator domain.Authenticator
	prompter      domain.LoginPrompter
	logger        *slog.Logger
}

// NewController creates a new login controller.
func NewController(authenticator domain.Authenticator, prompter domain.LoginPrompter, logger *slog.Logger) *Controller {
	return &Controller{
		authenticator: authenticator,
		prompter:      prompter,
		logger:        logger,
	}
}

// Authenticate returns the session of the first successful login. It returns
// errors.ErrLoginAborted when the operator cancels a prompt or declines to
// retry, and a *errors.FatalError for any failure other than rejected
// credentials. There is no limit on the number of attempts.
func (c *Controller) Authenticate(ctx context.Context, baseURL string) (*domain.Session, error) {
	for attempt := 1; ; attempt++ {
		creds, err := c.prompter.ReadCredentials(ctx)
		if err != nil {
			if crateerrors.IsCancelled(err) {
				return nil, fmt.Errorf("%w: credentials prompt cancelled", crateerrors.ErrLoginAborted)
			}
			return nil, crateerrors.NewFatalError("read credentials", err)
		}

		c.logger.DebugContext(ctx, "Login attempt",
			"attempt", attempt,
			"baseURL", baseURL,
			"username", creds.Username)

		session, err := c.authenticator.Login(ctx, baseURL, creds.Username, creds.Password)
		if err == nil {
			c.logger.InfoContext(ctx, "Logged in",
				"attempt", attempt,
				"username", session.Username)
			return session, nil
		}

		if !crateerrors.IsInvalidCredentials(err) {
			c.logger.ErrorContext(ctx, "Login failed",
				"attempt", attempt,
				"baseURL", baseURL,
				"error", err)
			return nil, crateerrors.NewFatalError("login", err)
		}

		c.logger.InfoContext(ctx, "Credentials rejected",
			"attempt", attempt,
			"username", creds.Username)

		retry, err := c.prompter.Confirm(ctx, RetryQuestion, true)
		if err != nil {
			if crateerrors.IsCancelled(err) {
				return nil, fmt.Errorf("%w: retry prompt cancelled", crateerrors.ErrLoginAborted)
			}
			return nil, crateerrors.NewFatalError("confirm retry", err)
		}
		if !retry {
			return nil, crateerrors.ErrLoginAborted
		}
	}
}
