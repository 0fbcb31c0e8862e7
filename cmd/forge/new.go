package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/forge/internal/config"
	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/options"
	"github.com/conn-castle/forge/internal/postgen"
	"github.com/conn-castle/forge/internal/scaffold"
	"github.com/conn-castle/forge/internal/templates"
	"github.com/conn-castle/forge/internal/terminal"
	"github.com/conn-castle/forge/internal/wizard"
)

var composeFunc = scaffold.Compose
var postgenRunFunc = postgen.Run
var collectAnswersFunc = wizard.Collect
var isTerminal = terminal.IsInteractive
var newRunner = func() postgen.Runner { return postgen.ExecRunner{} }
var statPath = os.Stat

// newFlags holds the raw flag values for the new command.
type newFlags struct {
	description    string
	author         string
	email          string
	url            string
	repo           string
	language       string
	bundler        string
	packageManager string
	templateDir    string
	noInstall      bool
	noGit          bool
	quiet          bool
	yes            bool
}

func newNewCmd() *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   messages.NewUse,
		Short: messages.NewShort,
		Long:  messages.NewLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "d", "", messages.NewFlagDescription)
	cmd.Flags().StringVar(&flags.author, "author", "", messages.NewFlagAuthor)
	cmd.Flags().StringVar(&flags.email, "email", "", messages.NewFlagEmail)
	cmd.Flags().StringVar(&flags.url, "url", "", messages.NewFlagURL)
	cmd.Flags().StringVar(&flags.repo, "repo", "", messages.NewFlagRepo)
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", messages.NewFlagLanguage)
	cmd.Flags().StringVarP(&flags.bundler, "bundler", "b", "", messages.NewFlagBundler)
	cmd.Flags().StringVarP(&flags.packageManager, "package-manager", "p", "", messages.NewFlagPackageManager)
	cmd.Flags().StringVar(&flags.templateDir, "template-dir", "", messages.NewFlagTemplateDir)
	cmd.Flags().BoolVar(&flags.noInstall, "no-install", false, messages.NewFlagNoInstall)
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, messages.NewFlagNoGit)
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, messages.NewFlagQuiet)
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, messages.NewFlagYes)

	return cmd
}

func runNew(cmd *cobra.Command, args []string, flags *newFlags) error {
	cwd, err := getwd()
	if err != nil {
		return err
	}
	runner := newRunner()

	seed, err := buildSeed(cmd, args, flags, runner)
	if err != nil {
		return err
	}

	// Fail on an existing destination before any prompt runs; prompted
	// names are re-checked after collection.
	if seed.Slug != "" {
		if err := ensureDestinationFree(filepath.Join(cwd, seed.Slug)); err != nil {
			return err
		}
	}

	answers, err := resolveAnswers(cmd, flags, seed)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			cmd.Println(messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}

	dest := filepath.Join(cwd, answers.Slug)
	if err := ensureDestinationFree(dest); err != nil {
		return err
	}

	opts, err := answers.Options(dest)
	if err != nil {
		return err
	}

	source, err := templateSource(flags.templateDir)
	if err != nil {
		return err
	}
	if err := composeFunc(source, scaffold.RealSystem{}, opts); err != nil {
		return err
	}
	cmd.Printf(messages.NewScaffoldDoneFmt, opts.Slug, opts.Path)

	if err := postgenRunFunc(postgen.Options{
		Dir:            opts.Path,
		PackageManager: opts.PackageManager,
		SkipInstall:    flags.noInstall,
		SkipGit:        flags.noGit,
		Quiet:          flags.quiet,
		Out:            cmd.OutOrStdout(),
		Runner:         runner,
	}); err != nil {
		return err
	}

	cmd.Printf(messages.NewNextStepsFmt, opts.Slug, opts.PackageManager)
	return nil
}

// buildSeed assembles the wizard seed from the name argument, flags, and the
// user defaults file. Flag-supplied answers are marked provided so the
// wizard skips them; defaults-file values only prefill prompts.
func buildSeed(cmd *cobra.Command, args []string, flags *newFlags, runner postgen.Runner) (*wizard.Answers, error) {
	seed := &wizard.Answers{Provided: map[wizard.Field]bool{}}

	if len(args) > 0 {
		if err := options.ValidateSlug(args[0]); err != nil {
			return nil, err
		}
		seed.Slug = args[0]
		seed.Provided[wizard.FieldName] = true
	}

	cfg := loadDefaults(cmd)
	seed.AuthorName = cfg.Author.Name
	seed.AuthorEmail = cfg.Author.Email
	seed.AuthorURL = cfg.Author.URL
	seed.Language = cfg.Defaults.Language
	seed.Bundler = cfg.Defaults.Bundler
	seed.PackageManager = cfg.Defaults.PackageManager

	stringFlags := []struct {
		name  string
		value string
		field wizard.Field
		dest  *string
		parse func(string) error
	}{
		{"description", flags.description, wizard.FieldDescription, &seed.Description, nil},
		{"author", flags.author, wizard.FieldAuthorName, &seed.AuthorName, nil},
		{"email", flags.email, wizard.FieldAuthorEmail, &seed.AuthorEmail, nil},
		{"url", flags.url, wizard.FieldAuthorURL, &seed.AuthorURL, nil},
		{"repo", flags.repo, wizard.FieldRepoURL, &seed.RepoURL, nil},
		{"language", flags.language, wizard.FieldLanguage, &seed.Language, func(v string) error {
			_, err := options.ParseLanguage(v)
			return err
		}},
		{"bundler", flags.bundler, wizard.FieldBundler, &seed.Bundler, func(v string) error {
			_, err := options.ParseBundler(v)
			return err
		}},
		{"package-manager", flags.packageManager, wizard.FieldPackageManager, &seed.PackageManager, func(v string) error {
			_, err := options.ParsePackageManager(v)
			return err
		}},
	}
	for _, flag := range stringFlags {
		if !cmd.Flags().Changed(flag.name) {
			continue
		}
		if flag.parse != nil {
			if err := flag.parse(flag.value); err != nil {
				return nil, err
			}
		}
		*flag.dest = flag.value
		seed.Provided[flag.field] = true
	}

	if available := postgen.AvailablePackageManagers(runner); len(available) > 0 {
		choices := make([]string, 0, len(available))
		for _, pm := range available {
			choices = append(choices, string(pm))
		}
		seed.PackageManagerChoices = choices
	}

	return seed, nil
}

// resolveAnswers runs the wizard, or applies defaults when --yes is set or
// no terminal is attached.
func resolveAnswers(cmd *cobra.Command, flags *newFlags, seed *wizard.Answers) (*wizard.Answers, error) {
	if flags.yes || !isTerminal() {
		if seed.Slug == "" {
			return nil, fmt.Errorf(messages.NewNameRequired)
		}
		if !flags.yes {
			if missing := requiredUnanswered(seed); len(missing) > 0 {
				return nil, fmt.Errorf(messages.NewRequiresTerminalFmt, strings.Join(missing, ", "))
			}
		}
		applyFallbackDefaults(seed)
		return seed, nil
	}
	return collectAnswersFunc(wizard.NewHuhUI(), seed)
}

// requiredUnanswered lists the choice answers that would need a prompt.
// Optional free-text answers default to empty without one.
func requiredUnanswered(seed *wizard.Answers) []string {
	missing := []string{}
	for _, field := range seed.Unanswered() {
		switch field {
		case wizard.FieldLanguage, wizard.FieldBundler, wizard.FieldPackageManager:
			if !hasSeedValue(seed, field) {
				missing = append(missing, string(field))
			}
		}
	}
	return missing
}

func hasSeedValue(seed *wizard.Answers, field wizard.Field) bool {
	switch field {
	case wizard.FieldLanguage:
		return seed.Language != ""
	case wizard.FieldBundler:
		return seed.Bundler != ""
	case wizard.FieldPackageManager:
		return seed.PackageManager != ""
	}
	return false
}

// applyFallbackDefaults fills unanswered choices with the standard defaults.
func applyFallbackDefaults(seed *wizard.Answers) {
	if seed.Language == "" {
		seed.Language = string(options.LanguageJavaScript)
	}
	if seed.Bundler == "" {
		seed.Bundler = string(options.BundlerVite)
	}
	if seed.PackageManager == "" {
		if len(seed.PackageManagerChoices) > 0 {
			seed.PackageManager = seed.PackageManagerChoices[0]
		} else {
			seed.PackageManager = string(options.PackageManagerNpm)
		}
	}
}

// loadDefaults reads the user defaults file, degrading to empty defaults
// with a warning when it cannot be read.
func loadDefaults(cmd *cobra.Command) *config.Config {
	path, err := configPathFunc()
	if err != nil {
		return &config.Config{}
	}
	cfg, err := config.Load(path)
	if err != nil {
		warnColor := color.New(color.FgYellow)
		_, _ = warnColor.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return &config.Config{}
	}
	return cfg
}

func ensureDestinationFree(dest string) error {
	if _, err := statPath(dest); err == nil {
		return fmt.Errorf(messages.NewDestinationExistsFmt, dest)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.ScaffoldFailedStatFmt, dest, err)
	}
	return nil
}

// templateSource returns the template catalog: the embedded one by default,
// or an on-disk directory when --template-dir is set.
func templateSource(templateDir string) (fs.FS, error) {
	if strings.TrimSpace(templateDir) == "" {
		return templates.Catalog(), nil
	}
	info, err := statPath(templateDir)
	if err != nil {
		return nil, fmt.Errorf(messages.ScaffoldFailedStatFmt, templateDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(messages.ScaffoldFailedStatFmt, templateDir, errors.New("not a directory"))
	}
	return os.DirFS(templateDir), nil
}
