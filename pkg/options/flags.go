package options

import (
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FlagAPIKey            = "api-key"
	FlagProjectID         = "project-id"
	FlagFullName          = "full-name"
	FlagIntegrationBranch = "integration-branch"
	FlagOnlyMine          = "only-mine"
	FlagUseSSL            = "use-ssl"
	FlagAppendName        = "append-name"
	FlagDefaults          = "defaults"
	FlagQuiet             = "quiet"
	FlagVerbose           = "verbose"
	FlagNoVerbose         = "no-verbose"
	FlagMessage           = "message"
)

// EnvPrefix is prepended to option keys to find environment overrides,
// e.g. PIVOTAL_API_TOKEN.
const EnvPrefix = "PIVOTAL"

type flagDef struct {
	name      string
	shorthand string
	key       string
	usage     string
	boolean   bool
}

var coreFlags = []flagDef{
	{name: FlagAPIKey, shorthand: "k", key: KeyAPIToken, usage: "Pivotal Tracker API key"},
	{name: FlagProjectID, shorthand: "p", key: KeyProjectID, usage: "Pivotal Tracker project id"},
	{name: FlagFullName, shorthand: "n", key: KeyFullName, usage: "Pivotal Tracker full name"},
	{name: FlagIntegrationBranch, shorthand: "b", key: KeyIntegrationBranch, usage: "The branch to merge finished stories back down onto"},
	{name: FlagOnlyMine, shorthand: "m", key: KeyOnlyMine, usage: "Only select Pivotal Tracker stories assigned to you", boolean: true},
	{name: FlagUseSSL, shorthand: "S", key: KeyUseSSL, usage: "Use SSL for connection to Pivotal Tracker", boolean: true},
	{name: FlagAppendName, shorthand: "a", key: KeyAppendName, usage: "Append the story id to the branch name instead of prepending it", boolean: true},
	{name: FlagDefaults, shorthand: "D", key: KeyDefaults, usage: "Accept default options. No-interaction mode", boolean: true},
	{name: FlagQuiet, shorthand: "q", key: KeyQuiet, usage: "Quiet, no-interaction mode", boolean: true},
	{name: FlagVerbose, shorthand: "v", key: KeyVerbose, usage: "Run verbosely", boolean: true},
}

// commandFlags are options a command may register for itself.
var commandFlags = []flagDef{
	{name: FlagMessage, key: KeyMessage},
}

// AddFlags registers the flags shared by every command. Commands register
// their own flags first; a shared flag whose shorthand a command has claimed
// keeps only its long name.
func AddFlags(fs *pflag.FlagSet) {
	for _, f := range coreFlags {
		if fs.Lookup(f.name) != nil {
			continue
		}
		shorthand := f.shorthand
		if shorthand != "" && fs.ShorthandLookup(shorthand) != nil {
			shorthand = ""
		}
		if f.boolean {
			fs.BoolP(f.name, shorthand, false, f.usage)
		} else {
			fs.StringP(f.name, shorthand, "", f.usage)
		}
	}
	if fs.Lookup(FlagNoVerbose) == nil {
		fs.Bool(FlagNoVerbose, false, "Do not run verbosely")
	}
}

// FromFlags builds the command line layer from the flags that were given
// and from PIVOTAL_* environment variables. Flags win over the environment.
func FromFlags(fs *pflag.FlagSet) (Options, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var o Options
	for _, f := range append(coreFlags, commandFlags...) {
		flag := fs.Lookup(f.name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(f.key, flag); err != nil {
			return Options{}, errors.Wrapf(err, "bind flag %q", f.name)
		}
		if !v.IsSet(f.key) {
			continue
		}
		if flag.Value.Type() == "bool" {
			setBool(&o, f.key, v.GetBool(f.key))
		} else {
			setString(&o, f.key, v.GetString(f.key))
		}
	}

	if fs.Changed(FlagNoVerbose) {
		noVerbose, err := fs.GetBool(FlagNoVerbose)
		if err != nil {
			return Options{}, errors.WithStack(err)
		}
		if noVerbose {
			o.Verbose = to.BoolPtr(false)
		}
	}

	return o, nil
}

func setString(o *Options, key, value string) {
	p := to.StringPtr(value)
	switch key {
	case KeyAPIToken:
		o.APIToken = p
	case KeyProjectID:
		o.ProjectID = p
	case KeyFullName:
		o.FullName = p
	case KeyIntegrationBranch:
		o.IntegrationBranch = p
	case KeyMessage:
		o.Message = p
	}
}

func setBool(o *Options, key string, value bool) {
	p := to.BoolPtr(value)
	switch key {
	case KeyOnlyMine:
		o.OnlyMine = p
	case KeyUseSSL:
		o.UseSSL = p
	case KeyAppendName:
		o.AppendName = p
	case KeyDefaults:
		o.Defaults = p
	case KeyQuiet:
		o.Quiet = p
	case KeyVerbose:
		o.Verbose = p
	}
}
