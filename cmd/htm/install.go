package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rojojun/hello-time-man/internal/install"
	"github.com/rojojun/hello-time-man/internal/messages"
)

var installSystem install.System = install.RealSystem{}

func newInstallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.InstallStartFmt, s.cfg.Package.Name)

			report, err := install.Run(s.root, install.Options{
				Platform: s.platform,
				Config:   s.cfg,
				System:   installSystem,
				Logger:   s.logger,
			})
			var pkgErr *install.PackagingError
			if errors.As(err, &pkgErr) {
				errOut := cmd.ErrOrStderr()
				_, _ = fmt.Fprintln(errOut, color.RedString(messages.InstallPackagingErrorFmt, pkgErr))
				_, _ = fmt.Fprintln(errOut, messages.InstallPackagingHint)
				_, _ = fmt.Fprintln(errOut, pkgErr.IssuesURL)
				return &SilentExitError{Code: 1}
			}
			if err != nil {
				return err
			}
			printInstallReport(out, cmd.ErrOrStderr(), report, s.platform.NeedsChmod())
			return nil
		},
	}
}

func printInstallReport(out io.Writer, errOut io.Writer, report *install.Report, chmod bool) {
	_, _ = fmt.Fprintf(out, messages.InstallPayloadSizeFmt, report.Layout.PayloadPath, report.PayloadKB())
	for _, w := range report.Launchers {
		switch {
		case w.Unchanged:
			_, _ = fmt.Fprintf(out, messages.InstallLauncherUnchangedFmt, w.Path)
		case w.Replaced:
			_, _ = fmt.Fprintf(out, messages.InstallLauncherReplacedFmt, w.Path)
		default:
			_, _ = fmt.Fprintf(out, messages.InstallLauncherWrittenFmt, w.Path)
		}
	}
	if chmod && len(report.Warnings) == 0 {
		_, _ = fmt.Fprintln(out, messages.InstallChmodGranted)
	}
	for _, warning := range report.Warnings {
		_, _ = fmt.Fprint(errOut, color.YellowString(messages.InstallWarningFmt, warning))
	}
	_, _ = fmt.Fprintln(out, color.GreenString(messages.InstallCompleted))

	names := make([]string, 0, len(report.Launchers))
	for _, w := range report.Launchers {
		names = append(names, w.Name)
	}
	if len(names) == 0 {
		return
	}
	_, _ = fmt.Fprintf(out, messages.InstallUsageFmt, names[0])
	if len(names) > 1 {
		_, _ = fmt.Fprintf(out, messages.InstallAliasTipFmt, strings.Join(names, ", "))
	}
}
