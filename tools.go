//go:build tools
// +build tools

// Package tools pins the code generators invoked through go generate,
// so go.mod and go.sum stay in sync on a fresh checkout.
package selection_lab

import (
	_ "go.uber.org/mock/mockgen"
)
