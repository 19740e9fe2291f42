package cmd

import (
	"github.com/naveego/git-pivotal/pkg/command"
	"github.com/naveego/git-pivotal/pkg/commands"
	"github.com/naveego/git-pivotal/pkg/git"
	"github.com/naveego/git-pivotal/pkg/tracker"
)

// environment supplies what commands run against.
type environment struct {
	git     git.Runner
	shell   command.Shell
	tracker func() tracker.Client
}

func defaultEnvironment() environment {
	return environment{
		git:   git.NewGitWrapper(""),
		shell: command.SystemShell{},
		tracker: func() tracker.Client {
			return tracker.NewPivotalClient(tracker.DefaultHost, nil)
		},
	}
}

func (e environment) deps() commands.Deps {
	return commands.Deps{
		Tracker: e.tracker(),
		Git:     e.git,
		Shell:   e.shell,
	}
}
