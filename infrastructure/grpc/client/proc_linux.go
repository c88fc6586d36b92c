//go:build linux

package client

import (
	"os/exec"
	"syscall"
)

// The kernel kills the sidecar if the selector dies first.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
