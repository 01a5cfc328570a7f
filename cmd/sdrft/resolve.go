package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openproteomics/sdrf-templates/internal/messages"
	"github.com/openproteomics/sdrf-templates/internal/template"
)

// resolvedTemplate is the YAML document printed by 'sdrft resolve'.
type resolvedTemplate struct {
	Template string            `yaml:"template"`
	Version  string            `yaml:"version"`
	Columns  []template.Column `yaml:"columns"`
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ResolveUse,
		Short: messages.ResolveShort,
		Long:  messages.ResolveLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, dir, err := splitTemplateArg(args[0])
			if err != nil {
				return err
			}
			_, _, set, err := loadRepository(cmd)
			if err != nil {
				return err
			}

			cols, err := set.ResolveColumns(name, dir)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = set.Template(name).Latest().Dir
			}

			data, err := yaml.Marshal(resolvedTemplate{
				Template: name,
				Version:  dir,
				Columns:  cols,
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// splitTemplateArg splits "name" or "name@version" into its parts.
func splitTemplateArg(arg string) (name, version string, err error) {
	name, version, versioned := strings.Cut(arg, "@")
	if name == "" || (versioned && version == "") || strings.Contains(version, "@") {
		return "", "", fmt.Errorf(messages.ResolveBadArgFmt, arg)
	}
	return name, version, nil
}
