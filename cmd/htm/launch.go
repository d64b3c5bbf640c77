package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rojojun/hello-time-man/internal/launcher"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/runner"
)

// newLaunchCmd forwards every argument to the archive. Flag parsing is off,
// so the package root is the parent of the launcher directory rather than --root.
func newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                messages.LaunchUse,
		Short:              messages.LaunchShort,
		Long:               messages.LaunchLong,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := launcher.ResolveDir(getenv, executable)
			if err != nil {
				return err
			}
			s, err := openSession(cmd, filepath.Dir(dir), false)
			if err != nil {
				return err
			}
			code, err := launcher.Run(cmd.Context(), launcher.Options{
				Platform:    s.platform,
				Config:      s.cfg,
				LauncherDir: dir,
				Runner:      s.runner,
				Getenv:      getenv,
				Stdio: runner.Stdio{
					Stdin:  cmd.InOrStdin(),
					Stdout: cmd.OutOrStdout(),
					Stderr: cmd.ErrOrStderr(),
				},
				Logger: s.logger,
			}, args)
			if err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			if code != 0 {
				return &SilentExitError{Code: code}
			}
			return nil
		},
	}
}
