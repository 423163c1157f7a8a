//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by this repo:
// - github.com/matryer/moq (service mocks, see //go:generate markers)
// - github.com/pressly/goose/v3/cmd/goose (migrations, tracked in go.mod)
