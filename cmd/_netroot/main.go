package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/dogeorg/netconfd/cmd/_netroot/cmd"
)

// This program is setuid so that it can be run by the netconfd user.
// Executing this program directly on NixOS systems will not work.
// Instead, run the wrapper that should be setuid @ /run/wrappers/bin/_netroot
func main() {
	if syscall.Geteuid() != 0 {
		fmt.Fprintln(os.Stderr, "This program must be run as root.")
		fmt.Fprintln(os.Stderr, "Your system should automatically be set up for this to work.")
		os.Exit(1)
		return
	}

	cmd.Execute()
}
