package harness

import (
	"os/exec"
	"syscall"
)

// runDebugger runs the debugger child with a hidden console window.
func runDebugger(cmd *exec.Cmd) (string, int, error) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := cmd.CombinedOutput()
	if err != nil {
		if exiterr, ok := err.(*exec.ExitError); ok {
			return string(out), exiterr.ExitCode(), nil
		}
		return string(out), 0, err
	}
	return string(out), 0, nil
}
