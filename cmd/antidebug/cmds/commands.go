// Package cmds implements the command tree of the antidebug tool.
package cmds

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xuxiaocheng0201/anti-debug/pkg/antidebug"
	"github.com/xuxiaocheng0201/anti-debug/pkg/config"
	"github.com/xuxiaocheng0201/anti-debug/pkg/harness"
	"github.com/xuxiaocheng0201/anti-debug/pkg/logflags"
	"github.com/xuxiaocheng0201/anti-debug/pkg/version"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string
	// logDest is the file path or file descriptor where logs should go.
	logDest string

	// gated makes the check command a no-op unless ANTI_DEBUG is set.
	gated bool
	// debuggerFlag selects the debugger the harness command drives.
	debuggerFlag string
	// denyFirst makes the harness command call DenyAttach before spawning
	// the debugger.
	denyFirst bool
	// expectAttach is whether the harness expects the external attach to
	// succeed.
	expectAttach bool
	// verbose makes the version command print build information.
	verbose bool

	// rootCommand is the root of the command tree.
	rootCommand *cobra.Command

	conf *config.Config
)

// Environment variables honored for CI use, so the tool can be dropped into a
// pipeline without flags.
const (
	// antiDebugEnv gates the check command and turns on attach denial in
	// the harness command.
	antiDebugEnv = "ANTI_DEBUG"
	// debuggerEnv names the debugger the harness command drives.
	debuggerEnv = "DEBUGGER"
	// debuggerSuccessEnv, when set, means the harness expects the external
	// attach to succeed.
	debuggerSuccessEnv = "DEBUGGER_SUCCESS"
)

// Exit codes of the check command.
const (
	exitAbsent      = 0
	exitPresent     = 1
	exitCheckFailed = 2
)

const antidebugCommandLongDesc = `antidebug detects debugger attachment to a process and asks the kernel to
refuse or obscure future attach attempts.

The check and deny commands operate on the antidebug process itself and exist
so the library behavior can be observed and scripted from a shell or a CI
pipeline. The harness command additionally drives a real external debugger
(gdb or lldb) against the running process and reports whether the kernel
permitted the attach.`

// New returns an initialized command tree.
func New() *cobra.Command {
	// Config setup and load.
	conf = config.LoadConfig()

	rootCommand = &cobra.Command{
		Use:   "antidebug",
		Short: "Detect debuggers and deny debugger attachment.",
		Long:  antidebugCommandLongDesc,
	}
	addLogFlags(rootCommand.PersistentFlags())

	checkCommand := &cobra.Command{
		Use:   "check",
		Short: "Report whether a debugger is attached to this process.",
		Long: `Report whether a debugger is attached to this process.

Exits 0 when no debugger is present, 1 when one is, and 2 when the question
could not be answered. With --gated the check only runs when the ANTI_DEBUG
environment variable is set, mirroring how a guarded binary would embed it.`,
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			os.Exit(checkCmd())
		},
	}
	checkCommand.Flags().BoolVar(&gated, "gated", false, "Only run the check when ANTI_DEBUG is set in the environment.")
	rootCommand.AddCommand(checkCommand)

	denyCommand := &cobra.Command{
		Use:   "deny",
		Short: "Ask the kernel to deny debugger attachment to this process.",
		Long: `Ask the kernel to deny debugger attachment to this process.

The effect lasts until the process exits. On macOS later attach attempts fail
outright; on Linux unprivileged tracers are refused; on Windows the current
thread is hidden from debuggers.`,
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			os.Exit(denyCmd())
		},
	}
	rootCommand.AddCommand(denyCommand)

	harnessCommand := &cobra.Command{
		Use:   "harness",
		Short: "Attach an external debugger to this process and report the outcome.",
		Long: `Attach an external debugger to this process and report the outcome.

The debugger is selected by --debugger, the DEBUGGER environment variable or
the config file, and runs in batch mode: attach to our pid, detach, quit.
With --deny (or ANTI_DEBUG set) DenyAttach runs first, so the attach is
expected to fail. The command exits 0 when the attach outcome matches the
expectation (--expect-attach, or DEBUGGER_SUCCESS in the environment) and 1
when it does not.`,
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			os.Exit(harnessCmd(cmd))
		},
	}
	harnessCommand.Flags().StringVar(&debuggerFlag, "debugger", "", "Debugger to drive: gdb, lldb, or a full command line with a {pid} token.")
	harnessCommand.Flags().BoolVar(&denyFirst, "deny", false, "Call DenyAttach before spawning the debugger.")
	harnessCommand.Flags().BoolVar(&expectAttach, "expect-attach", false, "Expect the external attach to succeed.")
	rootCommand.AddCommand(harnessCommand)

	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("antidebug\n%s\n", version.AntiDebugVersion)
			if verbose {
				fmt.Printf("Build Details: %s\n", version.BuildInfo())
			}
		},
	}
	versionCommand.Flags().BoolVarP(&verbose, "verbose", "v", false, "print verbose version info")
	rootCommand.AddCommand(versionCommand)

	return rootCommand
}

func addLogFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&log, "log", "", false, "Enable debug logging.")
	fs.StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should produce debug output (check, deny, harness).")
	fs.StringVarP(&logDest, "log-dest", "", "", "Writes logs to the specified file or file descriptor.")
}

func setupLogging() {
	if err := logflags.Setup(log, logOutput, logDest); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCheckFailed)
	}
}

func checkCmd() int {
	if gated && os.Getenv(antiDebugEnv) == "" {
		fmt.Printf("check disabled: %s not set\n", antiDebugEnv)
		return exitAbsent
	}
	logger := logflags.CheckLogger()
	logger.Debugf("deep detect enabled: %v", antidebug.DeepDetectEnabled())

	present, err := antidebug.IsDebuggerPresent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitCheckFailed
	}
	if present {
		printStatus(os.Stdout, "debugger detected", "31")
		return exitPresent
	}
	printStatus(os.Stdout, "no debugger present", "32")
	return exitAbsent
}

func denyCmd() int {
	logger := logflags.DenyLogger()
	if err := antidebug.DenyAttach(); err != nil {
		logger.Errorf("denial failed: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Println("attach denial in effect until process exit")
	return 0
}

func harnessCmd(cmd *cobra.Command) int {
	logger := logflags.HarnessLogger()

	if denyFirst || os.Getenv(antiDebugEnv) != "" {
		if err := antidebug.DenyAttach(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 2
		}
		logger.Debug("attach denial in effect")
	}

	name := debuggerFlag
	if name == "" {
		name = os.Getenv(debuggerEnv)
	}
	if name == "" {
		name = conf.Debugger
	}
	if name == "" {
		fmt.Fprintf(os.Stderr, "no debugger selected: use --debugger, %s or the config file\n", debuggerEnv)
		return 2
	}

	d, err := harness.New(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	d.Timeout = time.Duration(conf.AttachTimeout) * time.Second

	report, err := d.AttachDetach(os.Getpid())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	expect := conf.ExpectAttach
	if os.Getenv(debuggerSuccessEnv) != "" {
		expect = true
	}
	if cmd.Flags().Changed("expect-attach") {
		expect = expectAttach
	}

	if report.Attached {
		fmt.Printf("%s attached and detached (exit %d)\n", d.Name, report.ExitCode)
	} else {
		fmt.Printf("%s failed to attach (exit %d)\n", d.Name, report.ExitCode)
		logger.Debugf("debugger output:\n%s", report.Output)
	}
	if report.Attached != expect {
		fmt.Fprintf(os.Stderr, "attach outcome %v does not match expectation %v\n", report.Attached, expect)
		return 1
	}
	return 0
}

func printStatus(w io.Writer, msg, color string) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		out := colorable.NewColorableStdout()
		fmt.Fprintf(out, "\x1b[%sm%s\x1b[0m\n", color, msg)
		return
	}
	fmt.Fprintln(w, msg)
}
