//go:build tools

package tools

// This file tracks the CLI tools the repo depends on.
// It is not compiled into the binary.
//
//   - github.com/matryer/moq: regenerates the *_mock_test.go files behind
//     each service's go:generate directive.
//   - github.com/pressly/goose/v3/cmd/goose: pinned as a go.mod tool for ad-hoc
//     migration authoring; the server and revisoctl embed migrations.
