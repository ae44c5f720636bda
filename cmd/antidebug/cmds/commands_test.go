package cmds

import "testing"

func TestCheckGated(t *testing.T) {
	t.Setenv(antiDebugEnv, "")
	gated = true
	defer func() { gated = false }()

	// Gate closed: the check is skipped and reports absent.
	if code := checkCmd(); code != exitAbsent {
		t.Errorf("gated check without %s returned %d, want %d", antiDebugEnv, code, exitAbsent)
	}

	// Gate open: the real check runs; no debugger is attached to the test
	// process.
	t.Setenv(antiDebugEnv, "1")
	if code := checkCmd(); code != exitAbsent {
		t.Errorf("gated check with %s set returned %d, want %d", antiDebugEnv, code, exitAbsent)
	}
}

func TestCommandTree(t *testing.T) {
	root := New()
	if root.Use != "antidebug" {
		t.Errorf("root command use = %q, want antidebug", root.Use)
	}
	want := map[string]bool{"check": false, "deny": false, "harness": false, "version": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing %q subcommand", name)
		}
	}
}

func TestLogFlagsRegistered(t *testing.T) {
	root := New()
	for _, name := range []string{"log", "log-output", "log-dest"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
}
