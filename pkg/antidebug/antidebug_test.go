package antidebug

import (
	"errors"
	"testing"
)

func TestNotAttachedBaseline(t *testing.T) {
	// The test process itself runs without a tracer in CI.
	present, err := IsDebuggerPresent()
	if err != nil {
		t.Fatalf("IsDebuggerPresent failed: %v", err)
	}
	if present {
		t.Fatal("no debugger is attached to the test process, but one was reported")
	}
}

func TestRepeatedChecksStable(t *testing.T) {
	first, err := IsDebuggerPresent()
	if err != nil {
		t.Fatalf("IsDebuggerPresent failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		present, err := IsDebuggerPresent()
		if err != nil {
			t.Fatalf("IsDebuggerPresent failed on call %d: %v", i+2, err)
		}
		if present != first {
			t.Fatalf("call %d returned %v, first call returned %v", i+2, present, first)
		}
	}
}

func TestDenyAttachIdempotent(t *testing.T) {
	// DenyAttach changes kernel state for the test process until it exits,
	// but the change only affects external tracers, not the tests themselves.
	if err := DenyAttach(); err != nil {
		t.Fatalf("first DenyAttach failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := DenyAttach(); err != nil {
			t.Fatalf("repeat DenyAttach failed: %v", err)
		}
	}
}

func TestErrorsWrapSentinels(t *testing.T) {
	if !errors.Is(determinationError(errors.New("boom")), ErrDetermination) {
		t.Error("determination errors must wrap ErrDetermination")
	}
	if !errors.Is(denialError(errors.New("boom")), ErrDenial) {
		t.Error("denial errors must wrap ErrDenial")
	}
}
