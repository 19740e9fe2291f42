package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/naveego/git-pivotal/pkg/commands"
	"github.com/naveego/git-pivotal/pkg/core"
	"github.com/naveego/git-pivotal/pkg/options"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ArgGlobalDebug = "debug"
	rootName       = "git-pivotal"
)

var colorError = color.New(color.FgRed)

func newRootCmd(env environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           rootName,
		Short:         "Pivotal Tracker workflows for git.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       core.VersionString(),
		Long: `Git extensions for working with Pivotal Tracker stories. Each command
can also be installed as git-<command> and run as "git <command>".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix(options.EnvPrefix)
			v.AutomaticEnv()
			if err := v.BindPFlag(ArgGlobalDebug, cmd.Flags().Lookup(ArgGlobalDebug)); err != nil {
				return errors.WithStack(err)
			}

			core.ConfigureLogging(v.GetBool(ArgGlobalDebug))
			core.Log = core.Log.WithField("@command", cmd.Name())

			return nil
		},
	}

	rootCmd.PersistentFlags().Bool(ArgGlobalDebug, false, "Enable debug logging. You can also set PIVOTAL_DEBUG.")
	_ = rootCmd.PersistentFlags().MarkHidden(ArgGlobalDebug)

	for _, name := range commands.Names() {
		c, _ := commands.Lookup(name)
		addCommand(rootCmd, newPivotalCmd(env, c), withCommandFlags(c), withOptionFlags)
	}

	return rootCmd
}

// Execute runs the command named by the process arguments and exits.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, defaultEnvironment(), os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, env environment, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(env)
	rootCmd.SetArgs(dispatchArgs(argv))
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if e, ok := errors.Cause(err).(exitError); ok {
		return e.code
	}

	if core.Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		colorError.Fprintf(stderr, "%+v\n", err)
	} else {
		colorError.Fprintln(stderr, err)
	}

	return 1
}

// dispatchArgs returns the arguments for the root command. When the
// executable is named git-<command>, as git runs its extensions, the
// command name is put in front.
func dispatchArgs(argv []string) []string {
	if len(argv) == 0 {
		return nil
	}

	args := argv[1:]
	name := strings.TrimSuffix(filepath.Base(argv[0]), ".exe")
	if !strings.HasPrefix(name, "git-") || name == rootName {
		return args
	}

	sub := strings.TrimPrefix(name, "git-")
	if _, ok := commands.Lookup(sub); !ok {
		return args
	}

	return append([]string{sub}, args...)
}
