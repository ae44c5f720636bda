package main

import (
	"os"

	"github.com/xuxiaocheng0201/anti-debug/cmd/antidebug/cmds"
	"github.com/xuxiaocheng0201/anti-debug/pkg/logflags"
)

func main() {
	defer logflags.Close()
	if err := cmds.New().Execute(); err != nil {
		os.Exit(1)
	}
}
