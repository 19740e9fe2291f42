package options

import (
	"context"

	"github.com/naveego/git-pivotal/pkg/git"
	"github.com/spf13/pflag"
)

// Load resolves the options for one invocation: git config first,
// then the command line over it.
func Load(ctx context.Context, runner git.Runner, fs *pflag.FlagSet) (Options, error) {
	stored := FromGitConfig(ctx, runner)

	given, err := FromFlags(fs)
	if err != nil {
		return Options{}, err
	}

	return Merge(stored, given)
}
