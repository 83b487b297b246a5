//go:build !windows

package banglish

import (
	"os/exec"
	"syscall"
)

// setProcessGroup puts the command in its own process group so that
// cancellation can kill it together with any children it spawned.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
