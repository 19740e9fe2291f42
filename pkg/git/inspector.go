package git

import (
	"context"
	"sync"

	"github.com/naveego/git-pivotal/pkg/core"
)

// BranchInspector reports the branch checked out in a repository.
// The branch is looked up at most once.
type BranchInspector struct {
	git    Runner
	once   sync.Once
	branch BranchName
}

func NewBranchInspector(git Runner) *BranchInspector {
	return &BranchInspector{git: git}
}

// Current returns the short name of the current branch, or an empty
// name if HEAD is detached or the directory is not a repository.
func (b *BranchInspector) Current(ctx context.Context) BranchName {
	b.once.Do(func() {
		ref, err := SymbolicRef(ctx, b.git, "HEAD")
		if err != nil {
			core.Log.WithError(err).Debug("Could not resolve current branch.")
			return
		}
		b.branch = BranchName(BranchName(ref).Short())
	})
	return b.branch
}

// StoryID returns the story id embedded in the current branch name.
func (b *BranchInspector) StoryID(ctx context.Context) (string, bool) {
	return b.Current(ctx).StoryID()
}
