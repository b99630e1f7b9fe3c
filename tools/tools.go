//go:build tools

// Package tools pins code generators used by go:generate directives.
package tools

import (
	// mockgen regenerates internal/mocks from the ports interfaces.
	_ "go.uber.org/mock/mockgen"
)

// Development tools installed globally (not tracked in go.mod):
//
// Air - Live reload for Go apps
//   Install: go install github.com/air-verse/air@v1.63.0
//   Docs: https://github.com/air-verse/air
