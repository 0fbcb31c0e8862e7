package messages

// Wizard prompt titles and errors.
const (
	WizardRequiresTerminal = "wizard requires an interactive terminal"

	WizardNameTitle           = "Project name"
	WizardDescriptionTitle    = "Project description"
	WizardAuthorTitle         = "Author name (optional)"
	WizardEmailTitle          = "Author email (optional)"
	WizardURLTitle            = "Author URL (optional)"
	WizardRepoTitle           = "Repository URL (optional)"
	WizardLanguageTitle       = "Language"
	WizardBundlerTitle        = "Bundler"
	WizardPackageManagerTitle = "Package manager"

	WizardSummaryTitle       = "Review your project"
	WizardConfirmPrompt      = "Generate the project with these settings?"
	WizardExitWithoutChanges = "Exited without generating a project."

	WizardSummaryNameFmt           = "Name: %s"
	WizardSummaryDescriptionFmt    = "Description: %s"
	WizardSummaryAuthorFmt         = "Author: %s"
	WizardSummaryRepoFmt           = "Repository: %s"
	WizardSummaryLanguageFmt       = "Language: %s"
	WizardSummaryBundlerFmt        = "Bundler: %s"
	WizardSummaryPackageManagerFmt = "Package manager: %s"
	WizardSummaryNone              = "(none)"
)
