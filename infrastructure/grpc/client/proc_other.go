//go:build !linux

package client

import "os/exec"

// No Pdeathsig outside Linux, exec.CommandContext still kills the sidecar
// when the selector context ends.
func setPlatformSpecificAttrs(_ *exec.Cmd) {}
