package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openproteomics/sdrf-templates/internal/config"
	"github.com/openproteomics/sdrf-templates/internal/doctor"
	"github.com/openproteomics/sdrf-templates/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			repoRoot, err := resolveTemplatesRoot(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(repoRoot)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, repoRoot)

			results, set := doctor.CheckDiscovery(repoRoot, cfg)
			if set != nil {
				results = append(results, doctor.CheckExamples(repoRoot, set)...)
				results = append(results, doctor.CheckManifest(repoRoot, cfg, set)...)
			}

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprint(out, messages.DoctorChecksFailed)
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprint(out, messages.DoctorAllChecksPassed)
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var label string
	switch r.Status {
	case doctor.StatusOK:
		label = color.GreenString(string(r.Status))
	case doctor.StatusWarn:
		label = color.YellowString(string(r.Status))
	default:
		label = color.RedString(string(r.Status))
	}
	_, _ = fmt.Fprintf(out, "[%s] %s: %s\n", label, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "       -> %s\n", r.Recommendation)
	}
}
