package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/naveego/git-pivotal/pkg/core"
	"github.com/pkg/errors"
)

type ShellExe struct {
	// Exe is the executable to invoke.
	Exe *string
	// Args is the arguments to be passed to the exe.
	Args []string
	Env  []string
	// Command is the exe with its args as a single string, as you would type it on the CLI.
	Command *string
	Dir     *string
	Stdin   io.Reader
	ctx     context.Context
	cmd     *exec.Cmd
}

func NewShellExe(exe string, args ...string) *ShellExe {
	c := new(ShellExe)
	if len(args) == 0 {
		c.Command = &exe
	} else {
		c.Exe = &exe
		c.Args = args
	}

	return c
}

func (c *ShellExe) WithDir(dir string) *ShellExe {
	if dir != "" {
		c.Dir = &dir
	}
	return c
}

func (c *ShellExe) WithEnvValue(key, value string) *ShellExe {
	c.Env = append(c.Env, fmt.Sprintf("%s=%s", key, value))
	return c
}

func (c *ShellExe) WithContext(ctx context.Context) *ShellExe {
	c.ctx = ctx
	return c
}

func (c *ShellExe) WithStdin(r io.Reader) *ShellExe {
	c.Stdin = r
	return c
}

func (c *ShellExe) WithArgs(args ...string) *ShellExe {
	c.Args = append(c.Args, args...)
	return c
}

func (c *ShellExe) prepare() {

	if c.cmd != nil {
		return
	}

	if c.Exe == nil {
		segs := strings.Fields(to.String(c.Command))
		if len(segs) == 0 {
			segs = []string{""}
		}
		c.Exe = &segs[0]
		c.Args = append(segs[1:], c.Args...)
	}

	command := c.String()
	c.Command = &command

	exe, err := exec.LookPath(*c.Exe)
	if err != nil {
		exe = *c.Exe
	}

	c.cmd = exec.Command(exe, c.Args...)

	if c.Stdin != nil {
		c.cmd.Stdin = c.Stdin
	}

	if c.Dir != nil {
		c.cmd.Dir = *c.Dir
	}

	c.cmd.Env = append(os.Environ(), c.Env...)

	core.Log.WithField("exe", exe).
		WithField("args", c.Args).
		WithField("dir", c.cmd.Dir).
		Debug("ShellExe prepared.")
}

func (c *ShellExe) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", to.String(c.Exe), strings.Join(c.Args, " ")))
}

// RunE runs the command with its output attached to stdout and stderr,
// and returns the error only.
func (c *ShellExe) RunE(stdout, stderr io.Writer) error {
	c.prepare()

	c.cmd.Stdout = stdout
	c.cmd.Stderr = stderr
	var err error

	executeWithContext(c.ctx, c.cmd, func() {
		err = c.cmd.Run()
	})

	return errors.Wrapf(err, "command failed: %s", c.String())
}

// RunOut runs the command and returns the output or an error.
// Trailing newlines are trimmed from the output.
func (c *ShellExe) RunOut() (string, error) {
	c.prepare()
	var result string
	var err error

	cmd := c.cmd
	executeWithContext(c.ctx, cmd, func() {
		var out []byte
		out, err = cmd.Output()
		if exitErr, ok := err.(*exec.ExitError); ok {
			err = errors.WithMessage(err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		result = strings.Trim(string(out), "\n\r")
	})

	return result, err
}

// ExitCode returns the exit code carried by err, or -1 if err
// did not come from a process that exited.
func ExitCode(err error) int {
	if exitErr, ok := errors.Cause(err).(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// Blocks until fn returns, or ctx is done. If ctx is done first
// and cmd is still running, cmd will be killed.
func executeWithContext(ctx context.Context, cmd *exec.Cmd, fn func()) {
	if ctx == nil {
		ctx = context.Background()
	}

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	}

	<-done
}
