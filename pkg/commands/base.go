package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/naveego/git-pivotal/pkg/cli"
	"github.com/naveego/git-pivotal/pkg/command"
	"github.com/naveego/git-pivotal/pkg/core"
	"github.com/naveego/git-pivotal/pkg/git"
	"github.com/naveego/git-pivotal/pkg/options"
	"github.com/naveego/git-pivotal/pkg/tracker"
	"github.com/pkg/errors"
)

const (
	msgCredentialsRequired = "Pivotal Tracker API Token and Project ID are required"
	msgNoStory             = "No story id was supplied and you aren't on a topic branch!"
)

var explicitStoryID = regexp.MustCompile(`^\d+$`)

// Deps are the external collaborators of a command.
type Deps struct {
	Tracker tracker.Client
	Git     git.Runner
	Shell   command.Shell
}

// Base holds what every command needs for one invocation: its options,
// its input and output streams, and access to git and the tracker.
type Base struct {
	Options options.Options

	in       io.Reader
	out      io.Writer
	lines    *cli.LineReader
	tracker  tracker.Client
	branches *git.BranchInspector
	shell    command.Shell

	project  *tracker.Project
	storyID  string
	resolved bool
}

func NewBase(opts options.Options, deps Deps) *Base {
	b := &Base{
		Options:  opts,
		tracker:  deps.Tracker,
		branches: git.NewBranchInspector(deps.Git),
		shell:    deps.Shell,
	}
	return b.With(os.Stdin, os.Stdout)
}

// With rebinds the input and output streams.
func (b *Base) With(in io.Reader, out io.Writer) *Base {
	b.in = in
	b.out = out
	b.lines = cli.NewLineReader(in)
	return b
}

func (b *Base) Input() io.Reader  { return b.in }
func (b *Base) Output() io.Writer { return b.out }

func (b *Base) Tracker() tracker.Client { return b.tracker }

// Run checks that the tracker can be reached and authenticates the client.
// It returns a non-zero exit code if the command must not continue.
func (b *Base) Run(ctx context.Context) int {
	if !b.Options.HasCredentials() {
		b.Put(msgCredentialsRequired)
		return 1
	}

	b.tracker.Authenticate(b.Options.Token(), b.Options.IsUseSSL())

	return 0
}

// Put writes s and a newline to the output, unless quiet.
func (b *Base) Put(s string) {
	b.Print(s + "\n")
}

func (b *Base) Putf(format string, args ...interface{}) {
	b.Put(fmt.Sprintf(format, args...))
}

// Print writes s to the output, unless quiet.
func (b *Base) Print(s string) {
	if b.Options.IsQuiet() {
		return
	}
	_, _ = io.WriteString(b.out, s)
}

// Sys runs a shell command. When verbose, the command is echoed and its
// output goes to the output stream; otherwise the output is discarded.
// Failures are logged and otherwise ignored.
func (b *Base) Sys(ctx context.Context, line string) {
	var stdout, stderr io.Writer = io.Discard, io.Discard
	if b.Options.IsVerbose() {
		b.Put(line)
		if !b.Options.IsQuiet() {
			stdout, stderr = b.out, b.out
		}
	}

	if err := b.shell.Run(ctx, line, stdout, stderr); err != nil {
		core.Log.WithError(err).WithField("command", line).Debug("Command failed.")
	}
}

// Get runs a shell command and returns its output, echoing the command
// first when verbose. Failures are logged and otherwise ignored.
func (b *Base) Get(ctx context.Context, line string) string {
	if b.Options.IsVerbose() {
		b.Put(line)
	}

	out, err := b.shell.Output(ctx, line)
	if err != nil {
		core.Log.WithError(err).WithField("command", line).Debug("Command failed.")
	}
	return out
}

// Ask repeats question until a non-blank answer is read. On a terminal the
// question is asked with an interactive prompt. It fails when the input
// ends or ctx is done.
func (b *Base) Ask(ctx context.Context, question string) (string, error) {
	if !b.Options.IsQuiet() && cli.IsTerminal(b.in) && cli.IsTerminal(b.out) {
		return cli.RequestStringFromUser(b.in.(io.ReadCloser), b.out.(io.WriteCloser), question)
	}

	for {
		b.Put(question)
		line, err := b.lines.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		b.Put("")
	}
}

// StoryID returns the story id given as the first argument or, failing
// that, the one embedded in the current branch name. Empty means no story.
func (b *Base) StoryID(ctx context.Context, args []string) string {
	if !b.resolved {
		if len(args) > 0 && explicitStoryID.MatchString(args[0]) {
			b.storyID = args[0]
		} else {
			b.storyID, _ = b.branches.StoryID(ctx)
		}
		b.resolved = true
	}
	return b.storyID
}

func (b *Base) CurrentBranch(ctx context.Context) git.BranchName {
	return b.branches.Current(ctx)
}

func (b *Base) Project(ctx context.Context) (*tracker.Project, error) {
	if b.project == nil {
		project, err := b.tracker.FindProject(ctx, b.Options.Project())
		if err != nil {
			return nil, err
		}
		b.project = project
	}
	return b.project, nil
}

// FindStory looks up a story in the configured project.
func (b *Base) FindStory(ctx context.Context, storyID string) (*tracker.Story, error) {
	project, err := b.Project(ctx)
	if err != nil {
		return nil, err
	}
	story, err := b.tracker.FindStory(ctx, project, storyID)
	return story, errors.WithStack(err)
}

func (b *Base) AcceptanceBranch() string  { return b.Options.Acceptance() }
func (b *Base) IntegrationBranch() string { return b.Options.Integration() }
func (b *Base) Remote() string            { return b.Options.RemoteName() }
func (b *Base) FullName() string          { return b.Options.Name() }
