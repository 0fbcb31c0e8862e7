package messages

// Scaffolding and rendering error messages.
const (
	OptionsEmptySlug                = "project name must not be empty"
	OptionsInvalidSlugCharFmt       = "project name %q contains forbidden character %q"
	OptionsEmptyPath                = "destination path must not be empty"
	OptionsUnknownLanguageFmt       = "unknown language %q (supported: javascript, typescript)"
	OptionsUnknownBundlerFmt        = "unknown bundler %q (supported: webpack, vite, rollup)"
	OptionsUnknownPackageManagerFmt = "unknown package manager %q (supported: npm, yarn, pnpm, bun)"

	RenderContentFmt = "render %s: %v"
	RenderNameFmt    = "render name %s: %v"

	ScaffoldMissingTemplateFmt  = "template %q not found in catalog"
	ScaffoldFailedListFmt       = "list template dir %s: %w"
	ScaffoldFailedReadFmt       = "read template file %s: %w"
	ScaffoldFailedMkdirFmt      = "create directory %s: %w"
	ScaffoldFailedWriteFmt      = "write %s: %w"
	ScaffoldFailedStatFmt       = "stat %s: %w"

	TemplatesFailedReadFmt = "read embedded template %s: %w"
)
