package options

import (
	"context"
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/naveego/git-pivotal/pkg/core"
	"github.com/naveego/git-pivotal/pkg/git"
)

const (
	GitConfigAPIToken          = "pivotal.api-token"
	GitConfigFullName          = "pivotal.full-name"
	GitConfigProjectID         = "pivotal.project-id"
	GitConfigRemote            = "pivotal.remote"
	GitConfigAcceptanceBranch  = "pivotal.acceptance-branch"
	GitConfigIntegrationBranch = "pivotal.integration-branch"
	GitConfigOnlyMine          = "pivotal.only-mine"
	GitConfigAppendName        = "pivotal.append-name"
	GitConfigUseSSL            = "pivotal.use-ssl"
	GitConfigVerbose           = "pivotal.verbose"
)

// FromGitConfig reads the pivotal.* keys from git config.
// Keys which are missing or blank leave their option unset, except
// verbose, which is on unless pivotal.verbose says otherwise.
func FromGitConfig(ctx context.Context, runner git.Runner) Options {
	get := func(key string) string {
		value, err := git.ConfigGet(ctx, runner, key)
		if err != nil {
			core.Log.WithError(err).WithField("key", key).Debug("Could not read git config.")
			return ""
		}
		return strings.TrimSpace(value)
	}

	var o Options
	o.APIToken = nonEmpty(get(GitConfigAPIToken))
	o.FullName = nonEmpty(get(GitConfigFullName))
	o.ProjectID = nonEmpty(get(GitConfigProjectID))
	o.Remote = nonEmpty(get(GitConfigRemote))
	o.AcceptanceBranch = nonEmpty(get(GitConfigAcceptanceBranch))
	o.IntegrationBranch = nonEmpty(get(GitConfigIntegrationBranch))
	o.OnlyMine = isTrue(get(GitConfigOnlyMine))
	o.AppendName = isTrue(get(GitConfigAppendName))
	o.UseSSL = isTrue(get(GitConfigUseSSL))

	if verbose := get(GitConfigVerbose); verbose == "" {
		o.Verbose = to.BoolPtr(true)
	} else {
		o.Verbose = isTrue(verbose)
	}

	return o
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return to.StringPtr(s)
}

func isTrue(s string) *bool {
	if s == "" {
		return nil
	}
	return to.BoolPtr(strings.EqualFold(s, "true"))
}
