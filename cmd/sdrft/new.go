package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/openproteomics/sdrf-templates/internal/config"
	"github.com/openproteomics/sdrf-templates/internal/messages"
	"github.com/openproteomics/sdrf-templates/internal/template"
	"github.com/openproteomics/sdrf-templates/internal/wizard"
)

var newWizardUI wizard.UI = wizard.NewHuhUI()

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.NewUse,
		Short: messages.NewShort,
		Long:  messages.NewLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := resolveTemplatesRoot(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(repoRoot)
			if err != nil {
				return err
			}

			set, err := template.Discover(repoRoot, template.DiscoverOptions{Ignore: cfg.Discovery.Ignore})
			if err != nil {
				// An empty repository is fine for 'new': the wizard offers the
				// new-template path. Any other discovery failure is real,
				// including an unreadable or missing root.
				if !errors.Is(err, template.ErrEmptyRoot) {
					return err
				}
				set = nil
			}

			return wizard.Run(newWizardUI, wizard.Options{
				Root: repoRoot,
				Set:  set,
				Out:  cmd.OutOrStdout(),
			})
		},
	}
}
