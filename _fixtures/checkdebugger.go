package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/xuxiaocheng0201/anti-debug/pkg/antidebug"
)

func main() {
	wait := flag.Bool("wait", false, "wait for a line on stdin before checking")
	flag.Parse()
	if *wait {
		// Lets the parent order an external attach/detach before the check.
		bufio.NewReader(os.Stdin).ReadString('\n')
	}

	attached, err := antidebug.IsDebuggerPresent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}
	if attached {
		fmt.Println("ATTACHED")
	} else {
		fmt.Println("NOT_ATTACHED")
	}
}
