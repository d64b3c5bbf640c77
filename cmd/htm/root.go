package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/logging"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/platform"
	"github.com/rojojun/hello-time-man/internal/root"
	"github.com/rojojun/hello-time-man/internal/runner"
	"github.com/rojojun/hello-time-man/internal/terminal"
)

// Process hooks replaced in tests.
var (
	getwd      = os.Getwd
	executable = os.Executable
	getenv     = os.Getenv
	hostOS     = platform.Current
	newRunner  = func(logger *log.Logger) runner.Runner { return runner.New(logger) }
)

type rootFlags struct {
	root    string
	verbose bool
	noColor bool
}

// session is the resolved context shared by subcommands.
type session struct {
	root     string
	platform platform.Descriptor
	cfg      *config.Config
	logger   *log.Logger
	runner   runner.Runner
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor || !terminal.IsTerminal(cmd.OutOrStdout()) {
				color.NoColor = true
			}
		},
	}
	cmd.PersistentFlags().StringVar(&flags.root, "root", "", messages.RootFlagRoot)
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, messages.RootFlagVerbose)
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, messages.RootFlagNoColor)

	cmd.AddCommand(
		newInstallCmd(flags),
		newLaunchCmd(),
		newTestCmd(flags),
		newRenderCmd(flags),
	)
	return cmd
}

// open resolves the package root and loads its configuration.
func (f *rootFlags) open(cmd *cobra.Command) (*session, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}
	exe, _ := executable()
	dir, err := root.Resolve(f.root, exe, cwd)
	if err != nil {
		return nil, fmt.Errorf(messages.RootResolveRootFailedFmt, err)
	}
	return openSession(cmd, dir, f.verbose)
}

func openSession(cmd *cobra.Command, dir string, verbose bool) (*session, error) {
	logger := logging.New(cmd.ErrOrStderr(), verbose || logging.DebugFromEnv(getenv))
	cfg, err := config.Load(dir, getenv)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigLoadFailedFmt, err)
	}
	logger.Debug("session", "root", dir, "platform", hostOS().String())
	return &session{
		root:     dir,
		platform: hostOS(),
		cfg:      cfg,
		logger:   logger,
		runner:   newRunner(logger),
	}, nil
}
