//go:build deepdetect

package antidebug

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func init() {
	checkSteps = append(checkSteps, checkRemoteDebugger, checkDebugPort)
}

// checkRemoteDebugger asks the kernel whether any debugger, local or remote,
// is attached to the process. A failed call is a determination failure, not
// an absence.
func checkRemoteDebugger() (bool, error) {
	var present int32
	r0, _, callErr := procCheckRemoteDebuggerPresent.Call(
		uintptr(windows.CurrentProcess()),
		uintptr(unsafe.Pointer(&present)),
	)
	if r0 == 0 {
		return false, callErr
	}
	return present != 0, nil
}

// processDebugPort is the PROCESSINFOCLASS that retrieves the LPC port the
// kernel delivers debug events to. A non-zero port means a debugger holds it.
const processDebugPort = 7

func checkDebugPort() (bool, error) {
	var port uintptr
	var retLen uint32
	err := windows.NtQueryInformationProcess(
		windows.CurrentProcess(),
		processDebugPort,
		unsafe.Pointer(&port),
		uint32(unsafe.Sizeof(port)),
		&retLen,
	)
	if err != nil {
		return false, err
	}
	return port != 0, nil
}
