//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: go:generate directives in internal/service/*
//   and internal/transport/* regenerate the *_mock_test.go files.
// - github.com/pressly/goose/v3/cmd/goose: declared in the go.mod tool
//   block; used for ad-hoc migrations next to `lifeosctl migrate`.
