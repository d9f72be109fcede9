package main

import "github.com/dogeorg/netconfd/cmd/netconf/cmd"

func main() {
	cmd.Execute()
}
