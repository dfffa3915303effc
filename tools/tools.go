//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These tools are run with `go run` at a pinned version and are not tracked in go.mod
// since they are development tools, not runtime dependencies.
package tools

// Development tools:
//
// mockgen - gomock mocks for the ports in internal/core
//   Run: go generate ./internal/mocks
//   Version: go.uber.org/mock v0.6.0 (matches the go.uber.org/mock require)
//   Docs: https://github.com/uber-go/mock
