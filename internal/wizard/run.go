package wizard

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/openproteomics/sdrf-templates/internal/messages"
	"github.com/openproteomics/sdrf-templates/internal/scaffold"
	"github.com/openproteomics/sdrf-templates/internal/template"
)

// Options configures one wizard run.
type Options struct {
	// Root is the template repository root.
	Root string
	// Set is the current discovery result. Nil means an empty repository:
	// only the new-template path is offered.
	Set *template.Set
	// Out receives progress output.
	Out io.Writer
}

var templateNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Run walks the user through scaffolding a new template version.
func Run(ui UI, opts Options) error {
	plan, err := buildPlan(ui, opts)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			_, _ = fmt.Fprintln(opts.Out, messages.WizardAborted)
			return nil
		}
		return err
	}
	if plan == nil {
		_, _ = fmt.Fprintln(opts.Out, messages.WizardAborted)
		return nil
	}

	dir, err := plan.scaffold(opts.Root)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(opts.Out, messages.WizardScaffoldedFmt, dir)
	return nil
}

// plan captures the confirmed wizard choices.
type plan struct {
	template string
	version  string
	extends  string
	previous *template.Version // nil for a new template
}

func (p *plan) scaffold(root string) (string, error) {
	if p.previous != nil {
		return scaffold.NewVersion(root, p.previous, p.version)
	}
	return scaffold.NewTemplate(root, p.template, p.version, p.extends)
}

// buildPlan collects and confirms the wizard choices. A nil plan with nil
// error means the user declined the final confirmation.
func buildPlan(ui UI, opts Options) (*plan, error) {
	var names []string
	if opts.Set != nil {
		names = opts.Set.Names
	}

	choice := messages.WizardNewTemplateOption
	if len(names) > 0 {
		choices := append([]string{messages.WizardNewTemplateOption}, names...)
		if err := ui.Select(messages.WizardSelectTemplateTitle, choices, &choice); err != nil {
			return nil, err
		}
	}

	var p *plan
	var err error
	if choice == messages.WizardNewTemplateOption {
		p, err = planNewTemplate(ui, names)
	} else {
		p, err = planNewVersion(ui, opts.Set.Template(choice))
	}
	if err != nil {
		return nil, err
	}

	suffix := ""
	if p.extends != "" {
		suffix = fmt.Sprintf(messages.WizardExtendsSuffixFmt, p.extends)
	}
	confirmed := true
	if err := ui.Confirm(fmt.Sprintf(messages.WizardConfirmTitleFmt, p.template, p.version, suffix), &confirmed); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}
	return p, nil
}

func planNewTemplate(ui UI, existing []string) (*plan, error) {
	var name string
	if err := ui.Input(messages.WizardTemplateNameTitle, &name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if !templateNamePattern.MatchString(name) {
		return nil, fmt.Errorf(messages.WizardTemplateNameInvalidFmt, name)
	}
	for _, taken := range existing {
		if name == taken {
			return nil, fmt.Errorf(messages.WizardTemplateExistsFmt, name)
		}
	}

	version := "1.0.0"
	if err := ui.Input(messages.WizardFirstVersionTitle, &version); err != nil {
		return nil, err
	}
	version = strings.TrimSpace(version)
	if _, err := template.ParseVersion(version); err != nil {
		return nil, fmt.Errorf(messages.WizardVersionInvalidFmt, version, err)
	}

	extends := messages.WizardExtendsNone
	if len(existing) > 0 {
		choices := append([]string{messages.WizardExtendsNone}, existing...)
		if err := ui.Select(messages.WizardExtendsTitle, choices, &extends); err != nil {
			return nil, err
		}
	}
	if extends == messages.WizardExtendsNone {
		extends = ""
	}
	return &plan{template: name, version: version, extends: extends}, nil
}

func planNewVersion(ui UI, tmpl *template.Template) (*plan, error) {
	latest := tmpl.Latest()
	patch := latest.Number.IncPatch()
	minor := latest.Number.IncMinor()
	major := latest.Number.IncMajor()

	options := []string{
		fmt.Sprintf(messages.WizardBumpPatchFmt, patch.String()),
		fmt.Sprintf(messages.WizardBumpMinorFmt, minor.String()),
		fmt.Sprintf(messages.WizardBumpMajorFmt, major.String()),
	}
	choice := options[0]
	title := fmt.Sprintf(messages.WizardBumpTitleFmt, tmpl.Name, latest.Dir)
	if err := ui.Select(title, options, &choice); err != nil {
		return nil, err
	}

	version := patch.String()
	switch choice {
	case options[1]:
		version = minor.String()
	case options[2]:
		version = major.String()
	}
	return &plan{
		template: tmpl.Name,
		version:  version,
		extends:  latest.Extends(),
		previous: latest,
	}, nil
}
