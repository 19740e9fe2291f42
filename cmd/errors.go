package cmd

import "fmt"

// exitError carries a non-zero exit code from a command which has already
// told the user what went wrong.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
