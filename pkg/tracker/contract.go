package tracker

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when the tracker has no project or story with the requested id.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthenticated is returned by calls made before Authenticate.
	ErrNotAuthenticated = errors.New("tracker client is not authenticated")
)

type Project struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Story struct {
	ID           int64  `yaml:"id"`
	ProjectID    int64  `yaml:"projectID"`
	Name         string `yaml:"name"`
	CurrentState string `yaml:"currentState,omitempty"`
	StoryType    string `yaml:"storyType,omitempty"`
	URL          string `yaml:"url,omitempty"`
	// Labels is a comma-separated list of label names.
	Labels string `yaml:"labels,omitempty"`
}

// StoryUpdate is a partial update; only non-nil fields are sent.
type StoryUpdate struct {
	Labels *string
}

type Note struct {
	ID     int64  `yaml:"id,omitempty"`
	Author string `yaml:"author,omitempty"`
	Text   string `yaml:"text"`
}

// Client is the set of tracker operations the commands rely on.
type Client interface {
	// Authenticate sets the API token and whether to use https.
	// It must be called before any other method.
	Authenticate(token string, useSSL bool)
	FindProject(ctx context.Context, projectID string) (*Project, error)
	FindStory(ctx context.Context, project *Project, storyID string) (*Story, error)
	UpdateStory(ctx context.Context, story *Story, update StoryUpdate) (*Story, error)
	CreateNote(ctx context.Context, story *Story, note Note) (*Note, error)
}
