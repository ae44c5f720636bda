package harness

import (
	"os/exec"
	"reflect"
	"testing"
)

func TestKnownDebuggerArgs(t *testing.T) {
	if _, err := exec.LookPath("gdb"); err != nil {
		t.Skip("gdb not installed")
	}
	d, err := New("gdb")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-p", "1234", "--batch", "-ex", "detach", "-ex", "quit"}
	if got := d.Args(1234); !reflect.DeepEqual(got, want) {
		t.Errorf("gdb args = %v, want %v", got, want)
	}
}

func TestKnownDebuggerByPath(t *testing.T) {
	path, err := exec.LookPath("gdb")
	if err != nil {
		t.Skip("gdb not installed")
	}
	d, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "gdb" {
		t.Errorf("name = %q, want gdb", d.Name)
	}
	want := []string{"-p", "42", "--batch", "-ex", "detach", "-ex", "quit"}
	if got := d.Args(42); !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestUnknownDebugger(t *testing.T) {
	if _, err := New("windbg"); err == nil {
		t.Fatal("expected an error for an unknown debugger name")
	}
}

func TestEmptyDebugger(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatal("expected an error for an empty debugger name")
	}
}

func TestCustomCommandLine(t *testing.T) {
	// Use a binary that certainly exists so LookPath succeeds.
	d, err := New("go tool nonexistent -p {pid} --batch")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"tool", "nonexistent", "-p", "99", "--batch"}
	if got := d.Args(99); !reflect.DeepEqual(got, want) {
		t.Errorf("custom args = %v, want %v", got, want)
	}
}

func TestCustomCommandLineQuoting(t *testing.T) {
	d, err := New(`go "tool vet" {pid}`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"tool vet", "7"}
	if got := d.Args(7); !reflect.DeepEqual(got, want) {
		t.Errorf("quoted args = %v, want %v", got, want)
	}
}

func TestIllegalCommandLine(t *testing.T) {
	if _, err := New("gdb -p {pid} | tee log"); err == nil {
		t.Fatal("expected an error for a pipelined command line")
	}
}
