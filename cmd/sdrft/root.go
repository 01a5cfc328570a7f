package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openproteomics/sdrf-templates/internal/config"
	"github.com/openproteomics/sdrf-templates/internal/messages"
	"github.com/openproteomics/sdrf-templates/internal/root"
	"github.com/openproteomics/sdrf-templates/internal/template"
)

var getwd = os.Getwd

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("root", "", messages.RootFlagRoot)
	cmd.AddCommand(
		newManifestCmd(),
		newListCmd(),
		newResolveCmd(),
		newDoctorCmd(),
		newNewCmd(),
	)
	return cmd
}

// resolveTemplatesRoot returns the repository root from --root or by walking
// upward from the working directory.
func resolveTemplatesRoot(cmd *cobra.Command) (string, error) {
	flagRoot, err := cmd.Flags().GetString("root")
	if err != nil {
		return "", err
	}
	if flagRoot != "" {
		return filepath.Abs(flagRoot)
	}

	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	repoRoot, found, err := root.FindTemplatesRoot(cwd)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf(messages.RootMissingRepo)
	}
	return repoRoot, nil
}

// loadRepository resolves the root, loads sdrft.toml, and runs a discovery
// pass. Every read-only command starts here.
func loadRepository(cmd *cobra.Command) (string, *config.Config, *template.Set, error) {
	repoRoot, err := resolveTemplatesRoot(cmd)
	if err != nil {
		return "", nil, nil, err
	}
	cfg, err := config.Load(repoRoot)
	if err != nil {
		return "", nil, nil, err
	}
	set, err := template.Discover(repoRoot, template.DiscoverOptions{Ignore: cfg.Discovery.Ignore})
	if err != nil {
		return "", nil, nil, err
	}
	return repoRoot, cfg, set, nil
}
