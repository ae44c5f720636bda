package antidebug

import (
	"errors"
	"fmt"
)

var (
	// ErrDetermination is wrapped by every error returned from
	// IsDebuggerPresent: the OS refused or was unable to answer the
	// presence question.
	ErrDetermination = errors.New("could not determine debugger presence")

	// ErrDenial is wrapped by every error returned from DenyAttach: the
	// kernel rejected the denial request and the process keeps running
	// without the protection.
	ErrDenial = errors.New("attach denial rejected")
)

// IsDebuggerPresent reports whether a debugger is attached to the current
// process right now.
//
// The strategy is selected at build time. On windows it reads the
// BeingDebugged flag in the PEB, escalating through CheckRemoteDebuggerPresent
// and the process debug port when built with the deepdetect tag. On linux and
// android it parses the TracerPid field of /proc/self/status. On darwin it
// queries the kernel process table and tests the P_TRACED flag.
//
// A non-nil error means the question could not be answered, not that no
// debugger was found; it wraps ErrDetermination and the OS error.
func IsDebuggerPresent() (bool, error) {
	return isDebuggerPresent()
}

// DenyAttach asks the kernel to refuse or obscure debugger attachment to the
// current process from now until process exit. There is no way to undo it.
//
// On darwin this is a hard block (ptrace PT_DENY_ATTACH): later attach
// attempts by any tracer fail. On linux it restricts the permitted tracer to
// no process and clears the dumpable flag, which stops attach by unprivileged
// tracers. On windows it hides the current thread from debuggers, which is
// best-effort obfuscation rather than a block.
//
// Calling DenyAttach more than once is safe and does not produce a new error
// after the first success. A non-nil error wraps ErrDenial.
func DenyAttach() error {
	return denyAttach()
}

// DeepDetectEnabled reports whether the binary was built with the deepdetect
// tag. The escalation steps only exist on windows; on other platforms the tag
// changes nothing beyond this report.
func DeepDetectEnabled() bool {
	return deepDetect
}

func determinationError(err error) error {
	return fmt.Errorf("%w: %v", ErrDetermination, err)
}

func denialError(err error) error {
	return fmt.Errorf("%w: %v", ErrDenial, err)
}
