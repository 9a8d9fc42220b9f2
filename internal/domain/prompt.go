package domain

import "context"

// CommandReader reads one tokenized command line from the operator.
type CommandReader interface {
	ReadCommandLine(ctx context.Context) ([]string, error)
}

// LoginPrompter collects credentials and retry decisions during login.
type LoginPrompter interface {
	ReadCredentials(ctx context.Context) (Credentials, error)
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
}

// Selector lets the operator pick one entry from a list. It returns the index
// of the chosen item, or errors.ErrPromptCancelled when nothing was chosen.
type Selector interface {
	ChooseOne(ctx context.Context, prompt string, items []string) (int, error)
}

// Prompter is the complete interactive prompt layer.
type Prompter interface {
	CommandReader
	LoginPrompter
	Selector
}
