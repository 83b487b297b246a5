//go:build windows

package banglish

import "os/exec"

// setProcessGroup is a no-op on Windows; KillProcessGroup falls back
// to a taskkill tree kill there.
func setProcessGroup(_ *exec.Cmd) {}
