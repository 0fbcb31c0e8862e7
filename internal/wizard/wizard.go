// Package wizard collects project metadata through an interactive prompt
// flow.
//
// The flow is a declarative list of question descriptors. Each descriptor
// carries a predicate reporting whether the answer is already satisfied (by a
// CLI flag, a defaults-file value, or a single legal choice); predicates are
// evaluated once per run, and only unsatisfied questions are asked.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/options"
)

var (
	errBack      = errors.New("wizard back requested")
	errCancelled = errors.New("wizard cancelled")
)

// ErrCancelled reports that the user exited the wizard without confirming.
var ErrCancelled = errors.New("wizard cancelled by user")

// Answers accumulates collected metadata. Seed fields set before Collect and
// marked in Provided are treated as already answered.
type Answers struct {
	Slug        string
	Description string
	AuthorName  string
	AuthorEmail string
	AuthorURL   string
	RepoURL     string

	Language       string
	Bundler        string
	PackageManager string

	// Provided marks answers satisfied before the wizard runs.
	Provided map[Field]bool

	// PackageManagerChoices restricts the package manager prompt to tools
	// actually present on PATH. Empty means all supported managers.
	PackageManagerChoices []string
}

// Field identifies one collectable answer.
type Field string

// Collectable fields.
const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldAuthorName     Field = "author"
	FieldAuthorEmail    Field = "email"
	FieldAuthorURL      Field = "url"
	FieldRepoURL        Field = "repository"
	FieldLanguage       Field = "language"
	FieldBundler        Field = "bundler"
	FieldPackageManager Field = "package-manager"
)

func (a *Answers) provided(field Field) bool {
	return a.Provided != nil && a.Provided[field]
}

func (a *Answers) packageManagerChoices() []string {
	if len(a.PackageManagerChoices) > 0 {
		return a.PackageManagerChoices
	}
	choices := make([]string, 0, len(options.PackageManagers()))
	for _, pm := range options.PackageManagers() {
		choices = append(choices, string(pm))
	}
	return choices
}

// question is one prompt descriptor in the wizard flow.
type question struct {
	field     Field
	satisfied func(*Answers) bool
	ask       func(UI, *Answers) error
}

func selectValues[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}

// questions returns the wizard flow in ask order.
func questions() []question {
	return []question{
		{
			field:     FieldName,
			satisfied: func(a *Answers) bool { return a.provided(FieldName) },
			ask: func(ui UI, a *Answers) error {
				return ui.Input(messages.WizardNameTitle, &a.Slug, options.ValidateSlug)
			},
		},
		{
			field:     FieldDescription,
			satisfied: func(a *Answers) bool { return a.provided(FieldDescription) },
			ask: func(ui UI, a *Answers) error {
				return ui.Input(messages.WizardDescriptionTitle, &a.Description, nil)
			},
		},
		{
			field:     FieldAuthorName,
			satisfied: func(a *Answers) bool { return a.provided(FieldAuthorName) },
			ask: func(ui UI, a *Answers) error {
				return ui.Input(messages.WizardAuthorTitle, &a.AuthorName, nil)
			},
		},
		{
			field:     FieldAuthorEmail,
			satisfied: func(a *Answers) bool { return a.provided(FieldAuthorEmail) },
			ask: func(ui UI, a *Answers) error {
				return ui.Input(messages.WizardEmailTitle, &a.AuthorEmail, nil)
			},
		},
		{
			field:     FieldAuthorURL,
			satisfied: func(a *Answers) bool { return a.provided(FieldAuthorURL) },
			ask: func(ui UI, a *Answers) error {
				return ui.Input(messages.WizardURLTitle, &a.AuthorURL, nil)
			},
		},
		{
			field:     FieldRepoURL,
			satisfied: func(a *Answers) bool { return a.provided(FieldRepoURL) },
			ask: func(ui UI, a *Answers) error {
				return ui.Input(messages.WizardRepoTitle, &a.RepoURL, nil)
			},
		},
		{
			field:     FieldLanguage,
			satisfied: func(a *Answers) bool { return a.provided(FieldLanguage) },
			ask: func(ui UI, a *Answers) error {
				if a.Language == "" {
					a.Language = string(options.LanguageJavaScript)
				}
				return ui.Select(messages.WizardLanguageTitle, selectValues(options.Languages()), &a.Language)
			},
		},
		{
			field:     FieldBundler,
			satisfied: func(a *Answers) bool { return a.provided(FieldBundler) },
			ask: func(ui UI, a *Answers) error {
				if a.Bundler == "" {
					a.Bundler = string(options.BundlerVite)
				}
				return ui.Select(messages.WizardBundlerTitle, selectValues(options.Bundlers()), &a.Bundler)
			},
		},
		{
			field: FieldPackageManager,
			satisfied: func(a *Answers) bool {
				if a.provided(FieldPackageManager) {
					return true
				}
				// Single-choice collapsing: with one manager on PATH there
				// is nothing to ask.
				if choices := a.packageManagerChoices(); len(choices) == 1 {
					a.PackageManager = choices[0]
					return true
				}
				return false
			},
			ask: func(ui UI, a *Answers) error {
				choices := a.packageManagerChoices()
				if a.PackageManager == "" {
					a.PackageManager = choices[0]
				}
				return ui.Select(messages.WizardPackageManagerTitle, choices, &a.PackageManager)
			},
		},
	}
}

// Collect runs the prompt flow for every unsatisfied question, shows a
// summary, and asks for confirmation. Esc navigates back one question;
// declining the summary or pressing Ctrl+C returns ErrCancelled.
func Collect(ui UI, seed *Answers) (*Answers, error) {
	answers := *seed

	pending := []question{}
	for _, q := range questions() {
		// Evaluated once per run, before any prompt.
		if !q.satisfied(&answers) {
			pending = append(pending, q)
		}
	}

	idx := 0
	for idx < len(pending) {
		err := pending[idx].ask(ui, &answers)
		if err == nil {
			idx++
			continue
		}
		if errors.Is(err, errCancelled) {
			return nil, ErrCancelled
		}
		if !errors.Is(err, errBack) {
			return nil, err
		}
		if idx == 0 {
			return nil, ErrCancelled
		}
		idx--
	}

	if err := confirmSummary(ui, &answers); err != nil {
		return nil, err
	}
	return &answers, nil
}

func confirmSummary(ui UI, answers *Answers) error {
	if err := ui.Note(messages.WizardSummaryTitle, buildSummary(answers)); err != nil {
		if errors.Is(err, errBack) || errors.Is(err, errCancelled) {
			return ErrCancelled
		}
		return err
	}
	confirm := true
	if err := ui.Confirm(messages.WizardConfirmPrompt, &confirm); err != nil {
		if errors.Is(err, errBack) || errors.Is(err, errCancelled) {
			return ErrCancelled
		}
		return err
	}
	if !confirm {
		return ErrCancelled
	}
	return nil
}

// buildSummary renders the collected answers for the review screen.
func buildSummary(answers *Answers) string {
	orNone := func(value string) string {
		if strings.TrimSpace(value) == "" {
			return messages.WizardSummaryNone
		}
		return value
	}
	lines := []string{
		fmt.Sprintf(messages.WizardSummaryNameFmt, answers.Slug),
		fmt.Sprintf(messages.WizardSummaryDescriptionFmt, orNone(answers.Description)),
		fmt.Sprintf(messages.WizardSummaryAuthorFmt, orNone(formatAuthor(answers))),
		fmt.Sprintf(messages.WizardSummaryRepoFmt, orNone(answers.RepoURL)),
		fmt.Sprintf(messages.WizardSummaryLanguageFmt, answers.Language),
		fmt.Sprintf(messages.WizardSummaryBundlerFmt, answers.Bundler),
		fmt.Sprintf(messages.WizardSummaryPackageManagerFmt, answers.PackageManager),
	}
	return strings.Join(lines, "\n")
}

func formatAuthor(answers *Answers) string {
	parts := []string{}
	if answers.AuthorName != "" {
		parts = append(parts, answers.AuthorName)
	}
	if answers.AuthorEmail != "" {
		parts = append(parts, "<"+answers.AuthorEmail+">")
	}
	if answers.AuthorURL != "" {
		parts = append(parts, "("+answers.AuthorURL+")")
	}
	return strings.Join(parts, " ")
}

// Options builds the validated ProjectOptions record from collected answers.
func (a *Answers) Options(path string) (*options.ProjectOptions, error) {
	language, err := options.ParseLanguage(a.Language)
	if err != nil {
		return nil, err
	}
	bundler, err := options.ParseBundler(a.Bundler)
	if err != nil {
		return nil, err
	}
	pm, err := options.ParsePackageManager(a.PackageManager)
	if err != nil {
		return nil, err
	}
	opts := &options.ProjectOptions{
		Path:           path,
		Slug:           a.Slug,
		Description:    a.Description,
		AuthorName:     a.AuthorName,
		AuthorEmail:    a.AuthorEmail,
		AuthorURL:      a.AuthorURL,
		RepoURL:        a.RepoURL,
		Language:       language,
		Bundler:        bundler,
		PackageManager: pm,
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Unanswered returns the fields that are neither provided nor derivable
// without prompting. Used by the non-interactive path to fail fast instead
// of hanging on a prompt.
func (a *Answers) Unanswered() []Field {
	missing := []Field{}
	answers := *a
	for _, q := range questions() {
		if !q.satisfied(&answers) {
			missing = append(missing, q.field)
		}
	}
	return missing
}
