package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rojojun/hello-time-man/internal/harness"
	"github.com/rojojun/hello-time-man/internal/layout"
	"github.com/rojojun/hello-time-man/internal/messages"
)

func newTestCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.TestUse,
		Short: messages.TestShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.HarnessStartFmt, s.cfg.Package.Name, s.root)

			report, err := harness.Run(cmd.Context(), harness.Options{
				Platform: s.platform,
				Config:   s.cfg,
				Layout:   layout.New(s.root, s.cfg, s.platform),
				Runner:   s.runner,
				Logger:   s.logger,
			}, func(r harness.Result) { printResult(out, r) })
			if err != nil {
				_, _ = fmt.Fprintln(out, color.RedString(messages.HarnessFailureSummaryFmt, err))
				return &SilentExitError{Code: 1}
			}
			if n := report.Warnings(); n > 0 {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.HarnessWarningSummaryFmt, n))
				return nil
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.HarnessSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r harness.Result) {
	var status string
	switch r.Status {
	case harness.StatusOK:
		status = color.GreenString(messages.HarnessStatusOKLabel)
	case harness.StatusWarn:
		status = color.YellowString(messages.HarnessStatusWarnLabel)
	case harness.StatusFail:
		status = color.RedString(messages.HarnessStatusFailLabel)
	}
	_, _ = fmt.Fprintf(out, messages.HarnessResultLineFmt, status, r.Stage, r.Message)
	if r.Detail == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(r.Detail, "\n"), "\n") {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.HarnessDetailPrefix, line)
	}
}
