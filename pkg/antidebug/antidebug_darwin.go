package antidebug

import (
	"os"

	sys "golang.org/x/sys/unix"
)

// pTraced is the P_TRACED flag from sys/proc.h, set by the kernel while a
// tracer is attached. Not exported by golang.org/x/sys/unix.
const pTraced = 0x00000800

func isDebuggerPresent() (bool, error) {
	info, err := sys.SysctlKinfoProc("kern.proc.pid", os.Getpid())
	if err != nil {
		return false, determinationError(err)
	}
	return info.Proc.P_flag&pTraced != 0, nil
}

// denyAttach issues ptrace(PT_DENY_ATTACH): every later attach attempt
// against this process, by any tracer, is refused by the kernel until the
// process exits. Repeat calls succeed.
func denyAttach() error {
	if err := sys.PtraceDenyAttach(); err != nil {
		return denialError(err)
	}
	return nil
}
