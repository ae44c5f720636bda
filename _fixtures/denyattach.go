// The denyattach fixture optionally denies debugger attachment and then has
// an external debugger try to attach to it, reporting the outcome. Driven by
// the same environment variables as the antidebug harness command:
// ANTI_DEBUG enables the denial, DEBUGGER names the tool.
package main

import (
	"fmt"
	"os"

	"github.com/xuxiaocheng0201/anti-debug/pkg/antidebug"
	"github.com/xuxiaocheng0201/anti-debug/pkg/harness"
)

func main() {
	if os.Getenv("ANTI_DEBUG") != "" {
		if err := antidebug.DenyAttach(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(2)
		}
		fmt.Println("DENIED")
	}

	name := os.Getenv("DEBUGGER")
	if name == "" {
		return
	}
	d, err := harness.New(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}
	report, err := d.AttachDetach(os.Getpid())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}
	if report.Attached {
		fmt.Println("ATTACH_OK")
	} else {
		fmt.Println("ATTACH_FAIL")
	}
}
