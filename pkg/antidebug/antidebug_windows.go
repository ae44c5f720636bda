package antidebug

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32                       = windows.NewLazySystemDLL("kernel32.dll")
	procIsDebuggerPresent          = kernel32.NewProc("IsDebuggerPresent")
	procCheckRemoteDebuggerPresent = kernel32.NewProc("CheckRemoteDebuggerPresent")

	ntdll                      = windows.NewLazySystemDLL("ntdll.dll")
	procNtSetInformationThread = ntdll.NewProc("NtSetInformationThread")
)

// checkStep is a single presence probe. Steps run in declaration order; the
// walk stops at the first step that either finds a debugger or fails.
type checkStep func() (bool, error)

// The cheap PEB flag check always runs first. Building with the deepdetect
// tag appends the escalation steps (see deepdetect_windows.go), which need
// broader privileges and are costlier, so they are off by default.
var checkSteps = []checkStep{checkPEBFlag}

func isDebuggerPresent() (bool, error) {
	for _, step := range checkSteps {
		present, err := step()
		if err != nil {
			return false, determinationError(err)
		}
		if present {
			return true, nil
		}
	}
	return false, nil
}

// checkPEBFlag reads the BeingDebugged flag in the PEB through the
// IsDebuggerPresent API. The call cannot fail.
func checkPEBFlag() (bool, error) {
	flag, _, _ := procIsDebuggerPresent.Call()
	return flag != 0, nil
}

// threadHideFromDebugger is the THREADINFOCLASS understood by
// NtSetInformationThread that stops debug event delivery for a thread.
const threadHideFromDebugger = 0x11

// denyAttach hides the current thread from debuggers. A debugger can still
// attach to the process; it just stops seeing events from this thread, so the
// denial is obfuscation rather than a hard block.
func denyAttach() error {
	r0, _, _ := procNtSetInformationThread.Call(uintptr(windows.CurrentThread()), threadHideFromDebugger, 0, 0)
	if status := windows.NTStatus(r0); status != windows.STATUS_SUCCESS {
		return denialError(status)
	}
	return nil
}
