package tracker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dghubble/sling"
	"github.com/naveego/git-pivotal/pkg/core"
	"github.com/pkg/errors"
)

const (
	DefaultHost = "www.pivotaltracker.com"
	apiPath     = "/services/v5/"
	tokenHeader = "X-TrackerToken"
)

// PivotalClient talks to the Pivotal Tracker v5 REST API.
type PivotalClient struct {
	host       string
	httpClient *http.Client
	api        *sling.Sling
	projects   map[string]*Project
}

var _ Client = &PivotalClient{}

// NewPivotalClient returns a client for the tracker at host. A nil
// httpClient means http.DefaultClient.
func NewPivotalClient(host string, httpClient *http.Client) *PivotalClient {
	if host == "" {
		host = DefaultHost
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &PivotalClient{
		host:       host,
		httpClient: httpClient,
		projects:   map[string]*Project{},
	}
}

func (c *PivotalClient) Authenticate(token string, useSSL bool) {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	base := (&url.URL{Scheme: scheme, Host: c.host, Path: apiPath}).String()

	c.api = sling.New().Client(c.httpClient).Base(base).Set(tokenHeader, token)
}

func (c *PivotalClient) FindProject(ctx context.Context, projectID string) (*Project, error) {
	if project, ok := c.projects[projectID]; ok {
		return project, nil
	}

	req, err := c.req()
	if err != nil {
		return nil, err
	}

	project := new(Project)
	err = c.call(ctx, req.Get("projects/"+url.PathEscape(projectID)), project)
	if err != nil {
		return nil, errors.Wrapf(err, "find project %q", projectID)
	}

	c.projects[projectID] = project
	return project, nil
}

func (c *PivotalClient) FindStory(ctx context.Context, project *Project, storyID string) (*Story, error) {
	req, err := c.req()
	if err != nil {
		return nil, err
	}

	var res storyResource
	err = c.call(ctx, req.Get(storyPath(project.ID, storyID)), &res)
	if err != nil {
		return nil, errors.Wrapf(err, "find story %q in project %d", storyID, project.ID)
	}

	return res.story(), nil
}

func (c *PivotalClient) UpdateStory(ctx context.Context, story *Story, update StoryUpdate) (*Story, error) {
	req, err := c.req()
	if err != nil {
		return nil, err
	}

	var body storyUpdateResource
	if update.Labels != nil {
		labels := []labelResource{}
		for _, name := range SplitLabels(*update.Labels) {
			labels = append(labels, labelResource{Name: name})
		}
		body.Labels = &labels
	}

	var res storyResource
	path := storyPath(story.ProjectID, strconv.FormatInt(story.ID, 10))
	err = c.call(ctx, req.Put(path).BodyJSON(body), &res)
	if err != nil {
		return nil, errors.Wrapf(err, "update story %d", story.ID)
	}

	core.Log.WithField("story", story.ID).Debug("Updated story.")

	return res.story(), nil
}

func (c *PivotalClient) CreateNote(ctx context.Context, story *Story, note Note) (*Note, error) {
	req, err := c.req()
	if err != nil {
		return nil, err
	}

	var res commentResource
	path := storyPath(story.ProjectID, strconv.FormatInt(story.ID, 10)) + "/comments"
	err = c.call(ctx, req.Post(path).BodyJSON(commentResource{Text: note.Text}), &res)
	if err != nil {
		return nil, errors.Wrapf(err, "create note on story %d", story.ID)
	}

	// The tracker attributes comments to the owner of the token.
	core.Log.WithField("story", story.ID).WithField("author", note.Author).Debug("Created note.")

	return &Note{ID: res.ID, Author: note.Author, Text: res.Text}, nil
}

func (c *PivotalClient) req() (*sling.Sling, error) {
	if c.api == nil {
		return nil, errors.WithStack(ErrNotAuthenticated)
	}
	return c.api.New(), nil
}

func (c *PivotalClient) call(ctx context.Context, call *sling.Sling, success interface{}) error {
	req, err := call.Request()
	if err != nil {
		return errors.WithStack(err)
	}

	failure := new(apiError)
	resp, err := c.api.Do(req.WithContext(ctx), success, failure)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(ErrNotFound, "%s %s", req.Method, req.URL.Path)
	}
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	if resp.StatusCode >= 300 {
		return errors.Errorf("%s %s: %s: %s", req.Method, req.URL.Path, resp.Status, failure)
	}

	return nil
}

func storyPath(projectID int64, storyID string) string {
	return fmt.Sprintf("projects/%d/stories/%s", projectID, url.PathEscape(storyID))
}

type labelResource struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

type storyResource struct {
	ID           int64           `json:"id"`
	ProjectID    int64           `json:"project_id"`
	Name         string          `json:"name"`
	CurrentState string          `json:"current_state"`
	StoryType    string          `json:"story_type"`
	URL          string          `json:"url"`
	Labels       []labelResource `json:"labels"`
}

func (r storyResource) story() *Story {
	var names []string
	for _, l := range r.Labels {
		names = append(names, l.Name)
	}
	return &Story{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		Name:         r.Name,
		CurrentState: r.CurrentState,
		StoryType:    r.StoryType,
		URL:          r.URL,
		Labels:       strings.Join(names, ","),
	}
}

type storyUpdateResource struct {
	Labels *[]labelResource `json:"labels,omitempty"`
}

type commentResource struct {
	ID   int64  `json:"id,omitempty"`
	Text string `json:"text"`
}

type apiError struct {
	Code           string `json:"code"`
	Kind           string `json:"kind"`
	Message        string `json:"error"`
	GeneralProblem string `json:"general_problem"`
	PossibleFix    string `json:"possible_fix"`
}

func (e *apiError) String() string {
	if e.Message == "" {
		return "no error details returned"
	}
	msg := fmt.Sprintf("%s (%s)", e.Message, e.Code)
	if e.GeneralProblem != "" {
		msg += ": " + e.GeneralProblem
	}
	return msg
}
