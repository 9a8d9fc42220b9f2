package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"crate/internal/domain"
	crateerrors "crate/internal/errors"
)

const commandPrompt = "> "

// Adapter is the interactive prompt layer. It reads operator input from
// stdin and writes prompts to stderr so command output on stdout stays clean.
type Adapter struct {
	stdin           io.Reader
	reader          *bufio.Reader
	stderr          io.Writer
	defaultUsername string
	styles          selectorStyles
}

// NewAdapter creates a new terminal adapter. defaultUsername is offered at
// the username prompt and accepted on an empty answer; pass "" for none.
func NewAdapter(stdin io.Reader, stderr io.Writer, defaultUsername string) *Adapter {
	return &Adapter{
		stdin:           stdin,
		reader:          newLineReader(stdin, isTerminal(stdin)),
		stderr:          stderr,
		defaultUsername: defaultUsername,
		styles:          newSelectorStyles(stderr),
	}
}

var _ domain.Prompter = (*Adapter)(nil)

// ReadCommandLine prints the command prompt and returns the entered line
// split on whitespace. A blank line yields an empty slice.
func (a *Adapter) ReadCommandLine(ctx context.Context) ([]string, error) {
	line, err := a.readLine(ctx, commandPrompt)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

// ReadCredentials asks for a username and a masked password.
func (a *Adapter) ReadCredentials(ctx context.Context) (domain.Credentials, error) {
	username, err := a.readUsername(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}

	password, err := a.ReadPassword(ctx, "Password: ")
	if err != nil {
		return domain.Credentials{}, err
	}

	return domain.Credentials{Username: username, Password: password}, nil
}

func (a *Adapter) readUsername(ctx context.Context) (string, error) {
	prompt := "Username: "
	if a.defaultUsername != "" {
		prompt = fmt.Sprintf("Username [%s]: ", a.defaultUsername)
	}

	for {
		line, err := a.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		username := strings.TrimSpace(line)
		switch {
		case username != "":
			return username, nil
		case a.defaultUsername != "":
			return a.defaultUsername, nil
		default:
			fmt.Fprintln(a.stderr, "Username must not be empty.")
		}
	}
}

// ReadPassword reads a password from the terminal with echo disabled. When
// stdin is not a terminal the password is read as a plain line.
func (a *Adapter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	file, ok := a.stdin.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return a.readLine(ctx, prompt)
	}

	fmt.Fprint(a.stderr, prompt)
	password, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(a.stderr) // Print newline after password input
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", crateerrors.ErrPromptCancelled
		}
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// Confirm asks a yes/no question. An empty answer selects the default and
// anything unrecognised asks again.
func (a *Adapter) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	prompt := fmt.Sprintf("%s? %s: ", question, hint)

	for {
		line, err := a.readLine(ctx, prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(a.stderr, `Please answer "y" or "n".`)
		}
	}
}

// ChooseOne lets the operator pick one of items. Interactive terminals get a
// cursor-driven list; other inputs get a numbered list answered by index.
func (a *Adapter) ChooseOne(ctx context.Context, prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, crateerrors.NewValidationError("items", "", "non_empty", "nothing to choose from")
	}

	if a.IsInteractive() {
		return a.runSelector(ctx, prompt, items)
	}
	return a.chooseByNumber(ctx, prompt, items)
}

func (a *Adapter) chooseByNumber(ctx context.Context, prompt string, items []string) (int, error) {
	fmt.Fprintln(a.stderr, prompt)
	for i, item := range items {
		fmt.Fprintf(a.stderr, "%3d) %s\n", i+1, item)
	}

	question := fmt.Sprintf("Select [1-%d] (empty to cancel): ", len(items))
	for {
		line, err := a.readLine(ctx, question)
		if err != nil {
			return -1, err
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			return -1, crateerrors.ErrPromptCancelled
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(items) {
			fmt.Fprintf(a.stderr, "Enter a number between 1 and %d.\n", len(items))
			continue
		}
		return n - 1, nil
	}
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	return isTerminal(a.stdin)
}

func isTerminal(r io.Reader) bool {
	if file, ok := r.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// newLineReader buffers line reads from r. On a terminal the password prompt
// and the selector read the file directly, so the buffer must not hold bytes
// past the current line: it is fed one byte per read.
func newLineReader(r io.Reader, interactive bool) *bufio.Reader {
	if interactive {
		return bufio.NewReader(byteReader{r})
	}
	return bufio.NewReader(r)
}

type byteReader struct {
	r io.Reader
}

func (b byteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.r.Read(p[:1])
}

// readLine prints prompt and reads one line without its terminator. End of
// input before any character is reported as a cancelled prompt.
func (a *Adapter) readLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	fmt.Fprint(a.stderr, prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(a.stderr)
			return "", crateerrors.ErrPromptCancelled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
