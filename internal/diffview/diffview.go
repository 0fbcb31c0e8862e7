// Package diffview renders colored unified diffs for file previews.
package diffview

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"
)

// Unified returns a unified diff between the current and proposed content of
// path. An empty string means the contents are identical.
func Unified(path string, from string, to string) string {
	return udiff.Unified(path+" (current)", path+" (proposed)", from, to)
}

// Fprint writes a unified diff to w with added lines in green and removed
// lines in red.
func Fprint(w io.Writer, diff string) error {
	addColor := color.New(color.FgGreen)
	delColor := color.New(color.FgRed)
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		var err error
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			_, err = addColor.Fprintln(w, line)
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			_, err = delColor.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
