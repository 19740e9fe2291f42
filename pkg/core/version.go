package core

import "fmt"

// Set at build time with -ldflags "-X github.com/naveego/git-pivotal/pkg/core.Version=...".
var Version string
var Timestamp string
var Commit string

func VersionString() string {
	version := Version
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf(`Version: %s
Timestamp: %s
Commit: %s
`, version, Timestamp, Commit)
}
