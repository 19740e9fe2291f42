package commands

import (
	"context"
	"sort"

	"github.com/spf13/pflag"
)

// Command is one workflow, like blocking a story.
type Command interface {
	// Use is the one-line usage, starting with the command name.
	Use() string
	Short() string
	// AddFlags registers flags specific to the command. It runs before
	// the shared flags are added, so its shorthands take precedence.
	AddFlags(fs *pflag.FlagSet)
	// Run performs the workflow and returns the process exit code.
	// An error is an unexpected failure, such as a tracker error.
	Run(ctx context.Context, b *Base, args []string) (int, error)
}

// Registry maps command names to constructors.
var Registry = map[string]func() Command{
	"block":   NewBlock,
	"unblock": NewUnblock,
	"info":    NewInfo,
}

// Lookup returns a fresh command for name.
func Lookup(name string) (Command, bool) {
	factory, ok := Registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Names returns the registered command names in order.
func Names() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
