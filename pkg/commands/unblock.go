package commands

import (
	"context"

	"github.com/naveego/git-pivotal/pkg/options"
	"github.com/naveego/git-pivotal/pkg/tracker"
	"github.com/spf13/pflag"
)

// Unblock removes the blocked label from a story.
type Unblock struct{}

func NewUnblock() Command { return &Unblock{} }

func (c *Unblock) Use() string   { return "unblock [story-id]" }
func (c *Unblock) Short() string { return "Remove the blocked label from a story." }

func (c *Unblock) AddFlags(fs *pflag.FlagSet) {
	fs.StringP(options.FlagMessage, "m", "", "A note to add when unblocking the story.")
}

func (c *Unblock) Run(ctx context.Context, b *Base, args []string) (int, error) {
	storyID := b.StoryID(ctx, args)

	if code := b.Run(ctx); code != 0 {
		return code, nil
	}

	if storyID == "" {
		b.Put(msgNoStory)
		return 1, nil
	}

	story, err := b.FindStory(ctx, storyID)
	if err != nil {
		return 1, err
	}

	if !tracker.HasLabel(story.Labels, tracker.BlockedLabel) {
		b.Putf("Story %s is not blocked.", storyID)
		return 0, nil
	}

	labels := tracker.RemoveLabel(story.Labels, tracker.BlockedLabel)
	story, err = b.Tracker().UpdateStory(ctx, story, tracker.StoryUpdate{Labels: &labels})
	if err != nil {
		return 1, err
	}

	if message := b.Options.Text(); message != "" {
		_, err = b.Tracker().CreateNote(ctx, story, tracker.Note{Author: b.FullName(), Text: message})
		if err != nil {
			return 1, err
		}
	}

	b.Putf("Story %s has been unblocked.", storyID)

	return 0, nil
}
