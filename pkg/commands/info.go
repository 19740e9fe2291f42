package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Info shows a story.
type Info struct {
	output string
}

func NewInfo() Command { return &Info{output: OutputTable} }

func (c *Info) Use() string   { return "info [story-id]" }
func (c *Info) Short() string { return "Show the story for the current branch." }

func (c *Info) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.output, "output", "o", OutputTable, "Output format. Options are `table` or `yaml`.")
}

func (c *Info) Run(ctx context.Context, b *Base, args []string) (int, error) {
	storyID := b.StoryID(ctx, args)

	if code := b.Run(ctx); code != 0 {
		return code, nil
	}

	if storyID == "" {
		b.Put(msgNoStory)
		return 1, nil
	}

	if c.output != OutputTable && c.output != OutputYAML {
		b.Putf("Unknown output format %q; use %s or %s.", c.output, OutputTable, OutputYAML)
		return 1, nil
	}

	story, err := b.FindStory(ctx, storyID)
	if err != nil {
		return 1, err
	}

	if c.output == OutputYAML {
		y, err := yaml.Marshal(story)
		if err != nil {
			return 1, errors.Wrap(err, "render story")
		}
		b.Print(string(y))
		return 0, nil
	}

	w := new(strings.Builder)
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"ID", strconv.FormatInt(story.ID, 10)},
		{"Name", story.Name},
		{"Type", story.StoryType},
		{"State", story.CurrentState},
		{"Labels", story.Labels},
		{"URL", story.URL},
	})
	table.Render()
	b.Print(w.String())

	return 0, nil
}
