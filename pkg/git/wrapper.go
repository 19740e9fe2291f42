package git

import (
	"context"
	"strings"

	"github.com/naveego/git-pivotal/pkg/command"
	"github.com/pkg/errors"
)

// Runner executes git with the given arguments and returns its trimmed output.
type Runner interface {
	Exec(ctx context.Context, args ...string) (string, error)
}

type GitWrapper struct {
	dir string
}

var _ Runner = GitWrapper{}

// NewGitWrapper returns a wrapper which runs git in dir.
// An empty dir means the current working directory.
func NewGitWrapper(dir string) GitWrapper {
	return GitWrapper{dir: dir}
}

func (g GitWrapper) Exec(ctx context.Context, args ...string) (string, error) {
	if g.dir != "" {
		args = append([]string{"-C", g.dir}, args...)
	}

	out, err := command.NewShellExe("git", args...).WithContext(ctx).RunOut()
	if err != nil {
		return "", errors.Wrapf(err, "git %s", strings.Join(args, " "))
	}
	return out, nil
}

// SymbolicRef returns the ref that name points at, like "refs/heads/master".
func SymbolicRef(ctx context.Context, git Runner, name string) (string, error) {
	return git.Exec(ctx, "symbolic-ref", name)
}

// ConfigGet returns the value of a git config key. A key which is not set
// is not an error; it yields an empty string.
func ConfigGet(ctx context.Context, git Runner, key string) (string, error) {
	out, err := git.Exec(ctx, "config", "--get", key)
	if err != nil {
		// git config exits 1 when the key is missing.
		if command.ExitCode(err) == 1 {
			return "", nil
		}
		return "", err
	}
	return out, nil
}
