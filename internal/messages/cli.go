package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "forge"
	// RootShort is the short description for the root command.
	RootShort = "Project scaffolding CLI"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// NewUse is the new command usage.
	NewUse   = "new [name]"
	NewShort = "Generate a new project from a template"
	NewLong  = "Generate a new project directory from the template catalog, install dependencies, and initialize a git repository."

	NewFlagDescription    = "Project description"
	NewFlagAuthor         = "Author name"
	NewFlagEmail          = "Author email"
	NewFlagURL            = "Author URL"
	NewFlagRepo           = "Repository URL"
	NewFlagLanguage       = "Project language (javascript or typescript)"
	NewFlagBundler        = "Bundler (webpack, vite, or rollup)"
	NewFlagPackageManager = "Package manager (npm, yarn, pnpm, or bun)"
	NewFlagTemplateDir    = "Use an on-disk template catalog instead of the embedded one"
	NewFlagNoInstall      = "Skip dependency installation"
	NewFlagNoGit          = "Skip git repository initialization"
	NewFlagQuiet          = "Discard output from install and git subprocesses"
	NewFlagYes            = "Accept defaults for unanswered prompts without running the wizard"

	NewDestinationExistsFmt = "destination %s already exists; remove it or pick another name"
	NewNameRequired         = "project name is required when running non-interactively"
	NewRequiresTerminalFmt  = "missing required answers (%s); prompts require an interactive terminal, pass the matching flags or --yes"

	NewScaffoldDoneFmt = "Created %s at %s\n"
	NewNextStepsFmt    = "\nNext steps:\n  cd %s\n  %s run dev\n"

	// ConfigUse is the config command usage.
	ConfigUse   = "config"
	ConfigShort = "View or update scaffolding defaults"
	ConfigLong  = "View or update the defaults file used to prefill answers for new projects."

	ConfigFlagAuthor         = "Default author name"
	ConfigFlagEmail          = "Default author email"
	ConfigFlagURL            = "Default author URL"
	ConfigFlagLanguage       = "Default project language"
	ConfigFlagBundler        = "Default bundler"
	ConfigFlagPackageManager = "Default package manager"

	ConfigNoChanges     = "No changes to apply."
	ConfigApplyPrompt   = "Apply these changes?"
	ConfigNotApplied    = "Changes discarded."
	ConfigUpdatedFmt    = "Updated %s\n"
	ConfigCurrentHeader = "Current defaults:"
	ConfigLineFmt       = "  %s = %s\n"
	ConfigUnsetValue    = "(unset)"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptInvalidResponse = "invalid response %q"
	PromptRetryYesNo      = "Please enter y or n."
)
