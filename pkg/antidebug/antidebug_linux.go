//go:build linux

package antidebug

import (
	"os"

	sys "golang.org/x/sys/unix"
)

const selfStatus = "/proc/self/status"

func isDebuggerPresent() (bool, error) {
	status, err := os.ReadFile(selfStatus)
	if err != nil {
		return false, determinationError(err)
	}
	pid, err := parseTracerPid(status)
	if err != nil {
		return false, determinationError(err)
	}
	return pid != 0, nil
}

// denyAttach restricts who may trace this process. PR_SET_PTRACER with pid 0
// tells the Yama LSM that no process is an allowed tracer; kernels without
// Yama report EINVAL for it, which is not a failure of the denial itself.
// Clearing the dumpable flag additionally makes the kernel refuse attach from
// any unprivileged tracer regardless of Yama.
func denyAttach() error {
	if err := sys.Prctl(sys.PR_SET_PTRACER, 0, 0, 0, 0); err != nil && err != sys.EINVAL {
		return denialError(err)
	}
	if err := sys.Prctl(sys.PR_SET_DUMPABLE, 0, 0, 0, 0); err != nil {
		return denialError(err)
	}
	return nil
}
