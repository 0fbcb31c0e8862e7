// Package render substitutes placeholder tokens in template contents and in
// file or directory names.
//
// Tokens use an EJS-style `<%= key %>` syntax so they never collide with the
// interpolation syntax of the generated JavaScript/TypeScript sources. Names
// additionally carry a `$` sentinel prefix that stands in for a leading dot,
// so dotfiles can live in the catalog without tripping packaging tools.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/options"
)

const (
	leftDelim  = "<%="
	rightDelim = "%>"

	// dotSentinel prefixes catalog names that must gain a leading dot, e.g.
	// `$.gitignore` becomes `.gitignore`.
	dotSentinel = "$"
)

// Error reports a failed render together with the offending file or name.
type Error struct {
	// Path is the catalog path of the file or name that failed to render.
	Path string
	// Name is true when the failure occurred in name mode.
	Name bool
	Err  error
}

// Error formats the failure with the offending path.
func (e *Error) Error() string {
	if e.Name {
		return fmt.Sprintf(messages.RenderNameFmt, e.Path, e.Err)
	}
	return fmt.Sprintf(messages.RenderContentFmt, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Renderer substitutes tokens using the values of one ProjectOptions record.
type Renderer struct {
	funcs template.FuncMap
}

// New builds a Renderer bound to opts. Every recognized token is always
// bound; optional fields that are unset substitute the empty string.
func New(opts *options.ProjectOptions) *Renderer {
	bind := func(value string) func() string {
		return func() string { return value }
	}
	return &Renderer{funcs: template.FuncMap{
		"name":           bind(opts.Slug),
		"description":    bind(opts.Description),
		"author":         bind(opts.AuthorName),
		"email":          bind(opts.AuthorEmail),
		"url":            bind(opts.AuthorURL),
		"repository":     bind(opts.RepoURL),
		"packageManager": bind(string(opts.PackageManager)),
	}}
}

// Content renders a template file's full text. path is used only for error
// reporting.
func (r *Renderer) Content(path string, content string) (string, error) {
	out, err := r.render(path, content)
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}
	return out, nil
}

// Name renders a file or directory name and strips the dot sentinel.
func (r *Renderer) Name(path string, name string) (string, error) {
	out, err := r.render(path, name)
	if err != nil {
		return "", &Error{Path: path, Name: true, Err: err}
	}
	if rest, ok := strings.CutPrefix(out, dotSentinel); ok {
		return rest, nil
	}
	return out, nil
}

func (r *Renderer) render(path string, text string) (string, error) {
	// Fast path: nothing to substitute.
	if !strings.Contains(text, leftDelim) {
		return text, nil
	}
	tmpl, err := template.New(path).Delims(leftDelim, rightDelim).Funcs(r.funcs).Parse(text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, nil); err != nil {
		return "", err
	}
	return sb.String(), nil
}
