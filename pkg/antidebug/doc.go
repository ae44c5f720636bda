// Package antidebug detects debugger attachment and asks the kernel to
// refuse or obscure future attach attempts.
//
// The package exposes two operations. IsDebuggerPresent reports whether a
// ptrace-based debugger (Delve, gdb, lldb, a native OS debugger) is attached
// to the current process at the moment of the call. DenyAttach instructs the
// kernel to reject or hide from subsequent attach attempts; the effect lasts
// until the process exits and cannot be reverted.
//
// Both operations are stateless: every call re-reads the OS and nothing is
// cached between calls. They are safe to call from multiple goroutines
// without coordination.
//
// Error policy: IsDebuggerPresent never coerces an indeterminate result to
// "absent". If the OS state cannot be read or parsed the call returns a
// non-nil error wrapping ErrDetermination, and it is up to the caller whether
// to treat that conservatively (as if a debugger were present) or not.
//
// Example usage:
//
//	present, err := antidebug.IsDebuggerPresent()
//	if err != nil {
//		log.Fatalf("failed to detect debugger: %v", err)
//	}
//	if present {
//		os.Exit(1)
//	}
//
// Supported platforms: linux (including android), darwin, windows. Building
// for any other platform fails unless the "permissive" build tag is set, in
// which case the check always reports absent and denial is a no-op success.
// On windows the "deepdetect" build tag enables two additional, costlier
// presence checks beyond the PEB flag.
//
// Detection can be defeated by a determined attacker; treat it as one layer
// of a larger strategy, not as a security boundary.
package antidebug
