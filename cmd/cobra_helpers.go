package cmd

import (
	"github.com/naveego/git-pivotal/pkg/commands"
	"github.com/naveego/git-pivotal/pkg/options"
	"github.com/spf13/cobra"
)

func addCommand(parent *cobra.Command, child *cobra.Command, flags ...func(cmd *cobra.Command)) *cobra.Command {
	for _, fn := range flags {
		fn(child)
	}
	parent.AddCommand(child)

	return child
}

// withCommandFlags registers the flags a command declares itself.
// It must run before withOptionFlags so the command keeps its shorthands.
func withCommandFlags(c commands.Command) func(cmd *cobra.Command) {
	return func(cmd *cobra.Command) {
		c.AddFlags(cmd.Flags())
	}
}

func withOptionFlags(cmd *cobra.Command) {
	options.AddFlags(cmd.Flags())
}
