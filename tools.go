//go:build tools

package main

// Tool dependencies tracked in go.mod.
import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
