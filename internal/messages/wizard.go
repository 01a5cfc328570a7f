package messages

// Wizard messages for the interactive new-version flow.
const (
	NewUse   = "new"
	NewShort = "Scaffold a new template version interactively"
	NewLong  = "Walk through creating a new template version: pick an existing template (or\nname a new one), choose the version bump and the parent template, then\nscaffold the version directory with a rule file and example."

	WizardRequiresTerminal = "sdrft new requires an interactive terminal"

	WizardSelectTemplateTitle    = "Which template is this version for?"
	WizardNewTemplateOption      = "Create a new template"
	WizardTemplateNameTitle      = "Name for the new template (lowercase, hyphen-separated)"
	WizardTemplateNameInvalidFmt = "invalid template name %q: use lowercase letters, digits and hyphens"
	WizardTemplateExistsFmt      = "template %q already exists; pick it from the list instead"

	WizardBumpTitleFmt = "Version bump for %s (current latest %s)"
	WizardBumpPatchFmt = "patch (%s)"
	WizardBumpMinorFmt = "minor (%s)"
	WizardBumpMajorFmt = "major (%s)"

	WizardFirstVersionTitle = "Initial version"
	WizardVersionInvalidFmt = "invalid version %q: %v"

	WizardExtendsTitle = "Parent template (extends)"
	WizardExtendsNone  = "none"

	WizardConfirmTitleFmt  = "Create %s/%s%s?"
	WizardExtendsSuffixFmt = " extending %s"

	WizardAborted       = "aborted; nothing was written"
	WizardScaffoldedFmt = "Scaffolded %s\nEdit the rule file, then run 'sdrft manifest' to publish the version.\n"
)
