package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openproteomics/sdrf-templates/internal/manifest"
	"github.com/openproteomics/sdrf-templates/internal/messages"
)

func newManifestCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   messages.ManifestUse,
		Short: messages.ManifestShort,
		Long:  messages.ManifestLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, cfg, set, err := loadRepository(cmd)
			if err != nil {
				return err
			}
			m := manifest.Build(set)
			path := cfg.ManifestPath(repoRoot)
			out := cmd.OutOrStdout()

			if check {
				diff, inSync, err := m.Check(path)
				if err != nil {
					return err
				}
				if inSync {
					_, _ = fmt.Fprintf(out, messages.ManifestUpToDateFmt, cfg.Manifest.File)
					return nil
				}
				_, _ = fmt.Fprint(out, diff)
				return fmt.Errorf(messages.ManifestDriftFmt, cfg.Manifest.File)
			}

			if err := m.Write(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.ManifestWrittenFmt, cfg.Manifest.File, m.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, messages.ManifestFlagCheck)
	return cmd
}
