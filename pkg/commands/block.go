package commands

import (
	"context"

	"github.com/naveego/git-pivotal/pkg/options"
	"github.com/naveego/git-pivotal/pkg/tracker"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Block labels a story as blocked and records why.
type Block struct {
	story *tracker.Story
}

func NewBlock() Command { return &Block{} }

func (c *Block) Use() string   { return "block [story-id]" }
func (c *Block) Short() string { return "Mark a story as blocked, with a note explaining why." }

func (c *Block) AddFlags(fs *pflag.FlagSet) {
	fs.StringP(options.FlagMessage, "m", "", "The message to provide when blocking a story.")
}

func (c *Block) Run(ctx context.Context, b *Base, args []string) (int, error) {
	storyID := b.StoryID(ctx, args)

	if code := b.Run(ctx); code != 0 {
		return code, nil
	}

	if storyID == "" {
		b.Put(msgNoStory)
		return 1, nil
	}

	message := b.Options.Text()
	if message == "" {
		var err error
		message, err = b.Ask(ctx, "What's the reason for blocking this story?")
		if err != nil {
			return 1, errors.Wrap(err, "read reason for blocking")
		}
	}

	story, err := c.findStory(ctx, b, storyID)
	if err != nil {
		return 1, err
	}

	labels := tracker.AppendLabel(story.Labels, tracker.BlockedLabel)
	story, err = b.Tracker().UpdateStory(ctx, story, tracker.StoryUpdate{Labels: &labels})
	if err != nil {
		return 1, err
	}
	c.story = story

	_, err = b.Tracker().CreateNote(ctx, story, tracker.Note{Author: b.FullName(), Text: message})
	if err != nil {
		return 1, err
	}

	b.Putf("Story %s has been blocked.", storyID)

	return 0, nil
}

func (c *Block) findStory(ctx context.Context, b *Base, storyID string) (*tracker.Story, error) {
	if c.story == nil {
		story, err := b.FindStory(ctx, storyID)
		if err != nil {
			return nil, err
		}
		c.story = story
	}
	return c.story, nil
}
