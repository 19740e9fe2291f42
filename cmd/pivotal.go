package cmd

import (
	"context"

	"github.com/naveego/git-pivotal/pkg/commands"
	"github.com/naveego/git-pivotal/pkg/core"
	"github.com/naveego/git-pivotal/pkg/options"
	"github.com/spf13/cobra"
)

// newPivotalCmd adapts c to cobra. Options are loaded from git config and
// the command line each time it runs.
func newPivotalCmd(env environment, c commands.Command) *cobra.Command {
	return &cobra.Command{
		Use:   c.Use(),
		Short: c.Short(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			opts, err := options.Load(ctx, env.git, cmd.Flags())
			if err != nil {
				return err
			}

			b := commands.NewBase(opts, env.deps()).With(cmd.InOrStdin(), cmd.OutOrStdout())

			core.Log.WithField("args", args).Debug("Running command.")

			code, err := c.Run(ctx, b, args)
			if err != nil {
				return err
			}
			if code != 0 {
				return exitError{code: code}
			}
			return nil
		},
	}
}
