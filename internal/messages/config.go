package messages

// Defaults-file messages.
const (
	ConfigResolveHomeFmt      = "resolve home dir: %w"
	ConfigMissingFileFmt      = "read defaults file %s: %w"
	ConfigInvalidConfigFmt    = "invalid defaults file %s: %v"
	ConfigUnrecognizedKeysFmt = "defaults file %s has unrecognized keys: %v"
	ConfigFailedEncodeFmt     = "encode defaults: %w"
	ConfigFailedWriteFmt      = "write defaults file %s: %w"
	ConfigFailedCreateDirFmt  = "create defaults dir %s: %w"
)

// Post-generation messages.
const (
	PostgenInstallStartFmt = "Installing dependencies with %s...\n"
	PostgenGitStartFmt     = "Initializing git repository...\n"
	PostgenMissingToolFmt  = "%s not found on PATH: %w"
	PostgenCommandFmt      = "%s %s: %w"
)
