//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools in use:
// - github.com/matryer/moq (service-layer test mocks)
