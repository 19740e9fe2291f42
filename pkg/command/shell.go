package command

import (
	"context"
	"io"
)

// Shell runs command lines the way a user would type them.
type Shell interface {
	// Output runs line and returns its captured standard output.
	Output(ctx context.Context, line string) (string, error)
	// Run runs line with its output sent to stdout and stderr.
	Run(ctx context.Context, line string, stdout, stderr io.Writer) error
}

// SystemShell runs command lines through the platform shell.
type SystemShell struct {
	// Dir is the working directory; empty means the current directory.
	Dir string
}

var _ Shell = SystemShell{}

func (s SystemShell) Output(ctx context.Context, line string) (string, error) {
	return GetCommandForLine(line).WithDir(s.Dir).WithContext(ctx).RunOut()
}

func (s SystemShell) Run(ctx context.Context, line string, stdout, stderr io.Writer) error {
	return GetCommandForLine(line).WithDir(s.Dir).WithContext(ctx).RunE(stdout, stderr)
}
