package cli

import (
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrUserQuit is returned when the user interrupts a prompt.
var ErrUserQuit = errors.New("user quit")

// IsTerminal is true when r is a file attached to a terminal.
func IsTerminal(r interface{}) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RequestStringFromUser prompts on a terminal until the user enters a
// non-blank value.
func RequestStringFromUser(in io.ReadCloser, out io.WriteCloser, label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  in,
		Stdout: out,
		Validate: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("a value is required")
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err == promptui.ErrInterrupt || err == promptui.ErrAbort || err == promptui.ErrEOF {
		return "", errors.WithStack(ErrUserQuit)
	}

	return value, errors.WithStack(err)
}
