//go:build !windows

package harness

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// runDebugger runs the debugger child on a pty. gdb and lldb batch mode both
// probe the controlling terminal and can wedge or garble output when run on a
// plain pipe under CI.
func runDebugger(cmd *exec.Cmd) (string, int, error) {
	f, err := pty.Start(cmd)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	var buf bytes.Buffer
	// The pty read side reports EIO once the child exits; everything read
	// up to that point is the output we want.
	_, _ = io.Copy(&buf, f)

	err = cmd.Wait()
	if err != nil {
		if exiterr, ok := err.(*exec.ExitError); ok {
			return buf.String(), exiterr.ExitCode(), nil
		}
		return buf.String(), 0, err
	}
	return buf.String(), 0, nil
}
