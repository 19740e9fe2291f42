// Package options builds the settings every command runs with.
//
// Options are assembled from layers. The git config layer comes first and the
// command line layer (flags, then PIVOTAL_* environment variables) is merged
// over it field by field, so a value given on the command line always wins.
// A field which no layer sets stays nil.
package options

import (
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
)

const (
	KeyAPIToken          = "api_token"
	KeyProjectID         = "project_id"
	KeyFullName          = "full_name"
	KeyRemote            = "remote"
	KeyAcceptanceBranch  = "acceptance_branch"
	KeyIntegrationBranch = "integration_branch"
	KeyOnlyMine          = "only_mine"
	KeyAppendName        = "append_name"
	KeyUseSSL            = "use_ssl"
	KeyVerbose           = "verbose"
	KeyQuiet             = "quiet"
	KeyDefaults          = "defaults"
	KeyMessage           = "message"
)

const (
	DefaultAcceptanceBranch  = "acceptance"
	DefaultIntegrationBranch = "master"
	DefaultRemote            = "origin"
)

// Options is an immutable set of settings. Build one with Merge;
// read it through the accessors.
type Options struct {
	APIToken          *string `yaml:"api_token,omitempty"`
	ProjectID         *string `yaml:"project_id,omitempty"`
	FullName          *string `yaml:"full_name,omitempty"`
	Remote            *string `yaml:"remote,omitempty"`
	AcceptanceBranch  *string `yaml:"acceptance_branch,omitempty"`
	IntegrationBranch *string `yaml:"integration_branch,omitempty"`
	OnlyMine          *bool   `yaml:"only_mine,omitempty"`
	AppendName        *bool   `yaml:"append_name,omitempty"`
	UseSSL            *bool   `yaml:"use_ssl,omitempty"`
	Verbose           *bool   `yaml:"verbose,omitempty"`
	Quiet             *bool   `yaml:"quiet,omitempty"`
	Defaults          *bool   `yaml:"defaults,omitempty"`
	Message           *string `yaml:"message,omitempty"`
}

// Merge overlays the layers in order. A field set in a later layer
// replaces the value from earlier layers, including an explicit false.
func Merge(layers ...Options) (Options, error) {
	var merged Options
	for _, layer := range layers {
		if err := mergo.Merge(&merged, layer, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return Options{}, errors.Wrap(err, "merge options")
		}
	}
	return merged, nil
}

// HasCredentials is true when both an API token and a project ID are present.
func (o Options) HasCredentials() bool {
	return to.String(o.APIToken) != "" && to.String(o.ProjectID) != ""
}

func (o Options) Token() string      { return to.String(o.APIToken) }
func (o Options) Project() string    { return to.String(o.ProjectID) }
func (o Options) Name() string       { return to.String(o.FullName) }
func (o Options) Text() string       { return to.String(o.Message) }
func (o Options) IsOnlyMine() bool   { return to.Bool(o.OnlyMine) }
func (o Options) IsAppendName() bool { return to.Bool(o.AppendName) }
func (o Options) IsUseSSL() bool     { return to.Bool(o.UseSSL) }
func (o Options) IsVerbose() bool    { return to.Bool(o.Verbose) }
func (o Options) IsQuiet() bool      { return to.Bool(o.Quiet) }
func (o Options) IsDefaults() bool   { return to.Bool(o.Defaults) }

func (o Options) RemoteName() string {
	return withDefault(o.Remote, DefaultRemote)
}

func (o Options) Acceptance() string {
	return withDefault(o.AcceptanceBranch, DefaultAcceptanceBranch)
}

func (o Options) Integration() string {
	return withDefault(o.IntegrationBranch, DefaultIntegrationBranch)
}

func withDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
