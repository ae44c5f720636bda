//go:build !linux && !darwin && !windows && permissive

package antidebug

// Stubs selected by the permissive build tag on platforms without a detection
// strategy: the presence check always reports absent and attach denial is a
// no-op success. Without the tag the build fails instead, so that a silently
// wrong answer is never shipped by accident.

func isDebuggerPresent() (bool, error) { return false, nil }

func denyAttach() error { return nil }
