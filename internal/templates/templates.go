// Package templates embeds the template catalog shipped with the binary.
//
// The catalog holds one `common` subtree plus one `<language>-<bundler>`
// subtree per supported combination. Names may carry the `$` dot sentinel
// and contents may carry `<%= key %>` tokens; both are resolved by the
// scaffold and render packages, not here.
package templates

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/conn-castle/forge/internal/messages"
)

//go:embed catalog
var catalogFS embed.FS

// Catalog returns the embedded catalog root as an fs.FS.
func Catalog() fs.FS {
	sub, err := fs.Sub(catalogFS, "catalog")
	if err != nil {
		// The catalog directory is embedded at build time; a failure here is
		// a broken build, not a runtime condition.
		panic(err)
	}
	return sub
}

// Read returns the raw contents of one catalog file.
func Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(Catalog(), name)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesFailedReadFmt, name, err)
	}
	return data, nil
}

// Walk walks the catalog subtree rooted at root.
func Walk(root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(Catalog(), root, fn)
}
