package git

import (
	"regexp"
	"strings"
)

// BranchName is the name of a branch as reported by git, possibly
// including its ref prefix (refs/heads/feature/123-foo).
type BranchName string

var storyIDPattern = regexp.MustCompile(`\d+`)

// Short returns the last "/"-delimited segment of the branch name.
func (b BranchName) Short() string {
	s := strings.TrimRight(string(b), "\r\n")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// StoryID returns the first run of digits in the short branch name.
// A branch without digits has no story; ok is false.
func (b BranchName) StoryID() (id string, ok bool) {
	id = storyIDPattern.FindString(b.Short())
	return id, id != ""
}

func (b BranchName) String() string {
	return string(b)
}
