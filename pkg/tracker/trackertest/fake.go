// Package trackertest provides an in-memory tracker.Client which records
// the calls made against it.
package trackertest

import (
	"context"
	"strconv"

	"github.com/naveego/git-pivotal/pkg/tracker"
	"github.com/pkg/errors"
)

type Call struct {
	Method string
	ID     string
}

type StoryUpdate struct {
	StoryID int64
	Update  tracker.StoryUpdate
}

// Client is a fake tracker. Stories are keyed by their id as a string.
type Client struct {
	Token   string
	UseSSL  bool
	Project *tracker.Project
	Stories map[string]*tracker.Story
	Updates []StoryUpdate
	Notes   []tracker.Note
	Calls   []Call
	// UpdateErr, when set, is returned by UpdateStory.
	UpdateErr error
}

var _ tracker.Client = &Client{}

func New(projectID int64, stories ...*tracker.Story) *Client {
	c := &Client{
		Project: &tracker.Project{ID: projectID, Name: "Test Project"},
		Stories: map[string]*tracker.Story{},
	}
	for _, s := range stories {
		s.ProjectID = projectID
		c.Stories[strconv.FormatInt(s.ID, 10)] = s
	}
	return c
}

// RemoteCalls is the number of calls other than Authenticate.
func (c *Client) RemoteCalls() int {
	n := 0
	for _, call := range c.Calls {
		if call.Method != "Authenticate" {
			n++
		}
	}
	return n
}

func (c *Client) Authenticate(token string, useSSL bool) {
	c.Calls = append(c.Calls, Call{Method: "Authenticate"})
	c.Token = token
	c.UseSSL = useSSL
}

func (c *Client) FindProject(ctx context.Context, projectID string) (*tracker.Project, error) {
	c.Calls = append(c.Calls, Call{Method: "FindProject", ID: projectID})
	if c.Project == nil || strconv.FormatInt(c.Project.ID, 10) != projectID {
		return nil, errors.Wrapf(tracker.ErrNotFound, "project %q", projectID)
	}
	return c.Project, nil
}

func (c *Client) FindStory(ctx context.Context, project *tracker.Project, storyID string) (*tracker.Story, error) {
	c.Calls = append(c.Calls, Call{Method: "FindStory", ID: storyID})
	story, ok := c.Stories[storyID]
	if !ok {
		return nil, errors.Wrapf(tracker.ErrNotFound, "story %q", storyID)
	}
	copied := *story
	return &copied, nil
}

func (c *Client) UpdateStory(ctx context.Context, story *tracker.Story, update tracker.StoryUpdate) (*tracker.Story, error) {
	c.Calls = append(c.Calls, Call{Method: "UpdateStory", ID: strconv.FormatInt(story.ID, 10)})
	if c.UpdateErr != nil {
		return nil, c.UpdateErr
	}
	c.Updates = append(c.Updates, StoryUpdate{StoryID: story.ID, Update: update})
	updated := *story
	if update.Labels != nil {
		updated.Labels = *update.Labels
	}
	c.Stories[strconv.FormatInt(story.ID, 10)] = &updated
	return &updated, nil
}

func (c *Client) CreateNote(ctx context.Context, story *tracker.Story, note tracker.Note) (*tracker.Note, error) {
	c.Calls = append(c.Calls, Call{Method: "CreateNote", ID: strconv.FormatInt(story.ID, 10)})
	note.ID = int64(len(c.Notes) + 1)
	c.Notes = append(c.Notes, note)
	return &note, nil
}
