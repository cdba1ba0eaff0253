package console

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// SecretReader reads sensitive input without echoing it. The core depends
// on this interface only; terminal mode switching stays out of the services
// so they remain testable without a real terminal.
type SecretReader interface {
	ReadSecret(prompt string) (string, error)
}

// TerminalSecretReader reads from the process's controlling terminal with
// echo disabled.
type TerminalSecretReader struct {
	Out io.Writer
}

func (t TerminalSecretReader) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(t.Out, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(t.Out)
	if err != nil {
		return "", errors.Wrap(err, "read secret input")
	}
	return string(b), nil
}
