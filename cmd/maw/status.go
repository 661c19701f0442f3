package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/multi-agent-kit/internal/install"
	"github.com/conn-castle/multi-agent-kit/internal/messages"
)

func newStatusCmd() *cobra.Command {
	var targetFlag string
	var check bool

	cmd := &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(targetFlag)
			if err != nil {
				return err
			}
			report, err := install.Status(target)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), report)
			if check && !report.Complete() {
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&targetFlag, flagTarget, "", messages.FlagTarget)
	cmd.Flags().BoolVar(&check, "check", false, messages.StatusFlagCheck)

	return cmd
}

func printStatus(out io.Writer, report install.Report) {
	if report.Complete() {
		_, _ = color.New(color.FgGreen).Fprintf(out, messages.StatusCompleteFmt, report.Target)
	} else {
		_, _ = fmt.Fprintf(out, messages.StatusMissingHeaderFmt, report.Target)
		missing := color.New(color.FgRed)
		for _, name := range report.Missing {
			_, _ = missing.Fprintf(out, messages.StatusMissingLineFmt, name)
		}
	}
	if report.AgentsGitignore {
		_, _ = fmt.Fprint(out, messages.StatusGitignorePresent)
		return
	}
	_, _ = fmt.Fprint(out, messages.StatusGitignoreAbsent)
}
