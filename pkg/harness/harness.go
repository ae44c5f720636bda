// Package harness drives an external debugger against a running process.
//
// It exists for exercising the antidebug package end to end: spawn a real
// tracer (gdb or lldb) in batch mode, have it attach to a target pid, detach
// and quit, and report whether the kernel permitted the attach. It is
// integration-test tooling around the library, not part of the detection
// contract itself.
package harness

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cosiner/argv"

	"github.com/xuxiaocheng0201/anti-debug/pkg/logflags"
)

// Debugger is an external ptrace-capable tool the harness can drive.
type Debugger struct {
	// Name of the tool, for reporting.
	Name string
	// Path to the executable.
	Path string
	// Timeout bounds one attach/detach sequence. Zero means no limit.
	Timeout time.Duration

	args func(pid int) []string
}

// Report is the outcome of one attach/detach sequence.
type Report struct {
	// Attached is true if the kernel permitted the debugger to attach.
	Attached bool
	// ExitCode is the debugger's exit code.
	ExitCode int
	// Output is the debugger's combined output, for diagnostics.
	Output string
}

// pidToken in a custom command line is replaced with the target pid.
const pidToken = "{pid}"

func gdbArgs(pid int) []string {
	return []string{"-p", strconv.Itoa(pid), "--batch", "-ex", "detach", "-ex", "quit"}
}

func lldbArgs(pid int) []string {
	return []string{"-p", strconv.Itoa(pid), "--batch", "-o", "detach", "-o", "quit"}
}

var knownDebuggers = map[string]func(pid int) []string{
	"gdb":  gdbArgs,
	"lldb": lldbArgs,
}

// New returns a harness for the given debugger. A single token selects a
// known debugger ("gdb" or "lldb") with its standard batch attach/detach
// arguments; the token may also be a path to one, like /usr/bin/gdb. A string
// containing spaces is treated as a full command line, split with shell-like
// quoting rules, in which every "{pid}" token is replaced with the target pid.
func New(name string) (*Debugger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("no debugger specified")
	}
	if !strings.ContainsAny(name, " \t") {
		base := strings.TrimSuffix(filepath.Base(name), ".exe")
		mkargs, ok := knownDebuggers[base]
		if !ok {
			return nil, fmt.Errorf("unknown debugger %q (known: gdb, lldb)", name)
		}
		path, err := exec.LookPath(name)
		if err != nil {
			return nil, fmt.Errorf("debugger %q not found: %v", name, err)
		}
		return &Debugger{Name: base, Path: path, args: mkargs}, nil
	}
	return parseCommandLine(name)
}

func parseCommandLine(cmdline string) (*Debugger, error) {
	v, err := argv.Argv(cmdline, func(s string) (string, error) {
		return "", fmt.Errorf("backtick not supported in %q", s)
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(v) != 1 || len(v[0]) == 0 {
		return nil, fmt.Errorf("illegal debugger command line %q", cmdline)
	}
	w := v[0]
	path, err := exec.LookPath(w[0])
	if err != nil {
		return nil, fmt.Errorf("debugger %q not found: %v", w[0], err)
	}
	rest := w[1:]
	return &Debugger{
		Name: w[0],
		Path: path,
		args: func(pid int) []string {
			args := make([]string, len(rest))
			for i, a := range rest {
				args[i] = strings.ReplaceAll(a, pidToken, strconv.Itoa(pid))
			}
			return args
		},
	}, nil
}

// Args returns the argument vector used to attach to and detach from pid.
func (d *Debugger) Args(pid int) []string {
	return d.args(pid)
}

// AttachDetach runs the debugger in batch mode against pid: attach, detach,
// quit. The debugger exits non-zero when the kernel refuses the attach, which
// the report surfaces as Attached == false. The error return is reserved for
// failures to run the debugger at all.
func (d *Debugger) AttachDetach(pid int) (*Report, error) {
	logger := logflags.HarnessLogger()
	args := d.args(pid)
	logger.Debugf("spawning %s %v", d.Path, args)

	ctx := context.Background()
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, d.Path, args...)
	output, exitCode, err := runDebugger(cmd)
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("%s did not finish within %v", d.Name, d.Timeout)
	}
	if err != nil {
		return nil, fmt.Errorf("could not run %s: %v", d.Name, err)
	}
	logger.Debugf("%s exited %d", d.Name, exitCode)
	return &Report{
		Attached: exitCode == 0,
		ExitCode: exitCode,
		Output:   output,
	}, nil
}
