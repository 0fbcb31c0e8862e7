package templates

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTemplate(t *testing.T) {
	data, err := Read("common/README.md")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<%= name %>")
}

func TestReadTemplateMissing(t *testing.T) {
	_, err := Read("missing.txt")
	assert.Error(t, err)
}

func TestCatalogShipsDotSentinelNames(t *testing.T) {
	data, err := Read("common/$.gitignore")
	require.NoError(t, err)
	assert.Contains(t, string(data), "node_modules/")
}

func TestCatalogShipsEveryCombination(t *testing.T) {
	combos := []string{
		"javascript-webpack", "javascript-vite", "javascript-rollup",
		"typescript-webpack", "typescript-vite", "typescript-rollup",
	}
	for _, combo := range combos {
		info, err := fs.Stat(Catalog(), combo)
		require.NoError(t, err, combo)
		assert.True(t, info.IsDir(), combo)

		data, err := Read(combo + "/package.json")
		require.NoError(t, err, combo)
		assert.Contains(t, string(data), `"name": "<%= name %>"`, combo)
	}
}

func TestWalkCatalog(t *testing.T) {
	var files []string
	err := Walk("common", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, files, "common/README.md")
	assert.Contains(t, files, "common/$.editorconfig")
}
