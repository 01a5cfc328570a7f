package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openproteomics/sdrf-templates/internal/manifest"
	"github.com/openproteomics/sdrf-templates/internal/messages"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, set, err := loadRepository(cmd)
			if err != nil {
				return err
			}
			m := manifest.Build(set)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, messages.ListHeader)
			for _, name := range m.Names() {
				entry, _ := m.Entry(name)
				extends := entry.Extends
				if extends == "" {
					extends = messages.ListNoParent
				}
				_, _ = fmt.Fprintf(w, messages.ListRowFmt, name, entry.Latest, len(entry.Versions), extends)
			}
			return w.Flush()
		},
	}
}
