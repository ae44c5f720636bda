package antidebug

import (
	"errors"
	"testing"
)

func TestParseTracerPidNoTracer(t *testing.T) {
	status := []byte("Name:\tcat\nUmask:\t0022\nState:\tR (running)\nTracerPid:\t0\nUid:\t1000\n")
	pid, err := parseTracerPid(status)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pid != 0 {
		t.Fatalf("expected tracer pid 0, got %d", pid)
	}
}

func TestParseTracerPidAttached(t *testing.T) {
	status := []byte("Name:\tcat\nTracerPid:\t4321\nUid:\t1000\n")
	pid, err := parseTracerPid(status)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pid != 4321 {
		t.Fatalf("expected tracer pid 4321, got %d", pid)
	}
}

func TestParseTracerPidSpaceSeparated(t *testing.T) {
	// Some kernels separate fields with spaces rather than a tab.
	pid, err := parseTracerPid([]byte("TracerPid:   17\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pid != 17 {
		t.Fatalf("expected tracer pid 17, got %d", pid)
	}
}

func TestParseTracerPidMissingField(t *testing.T) {
	_, err := parseTracerPid([]byte("Name:\tcat\nState:\tR (running)\n"))
	if err == nil {
		t.Fatal("expected an error for a status blob without a TracerPid field")
	}
	if !errors.Is(err, errNoTracerPid) {
		t.Fatalf("expected errNoTracerPid, got: %v", err)
	}
}

func TestParseTracerPidMalformedValue(t *testing.T) {
	for _, blob := range []string{
		"TracerPid:\tnotanumber\n",
		"TracerPid:\n",
	} {
		if _, err := parseTracerPid([]byte(blob)); err == nil {
			t.Errorf("expected an error for %q", blob)
		}
	}
}

func TestParseTracerPidEmpty(t *testing.T) {
	if _, err := parseTracerPid(nil); err == nil {
		t.Fatal("expected an error for an empty status blob")
	}
}
