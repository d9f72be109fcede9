package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var errBadInterface = errors.New("interface must be a valid interface name")
var errOnlyScan = errors.New("only \"scan\" is allowed")
var errOnlyLinkUp = errors.New("only \"link set <interface> up\" is allowed")

var ipCmd = &cobra.Command{
	Use:   "ip link set <interface> up",
	Short: "Bring a network interface up",
	Args: cobra.MatchAll(cobra.ExactArgs(4), func(cmd *cobra.Command, args []string) error {
		return checkLinkUpArgs(args)
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("ip", "link", "set", args[2], "up")
	},
}

func checkLinkUpArgs(args []string) error {
	if args[0] != "link" || args[1] != "set" || args[3] != "up" {
		return errOnlyLinkUp
	}
	return checkInterface(args[2])
}

func init() {
	rootCmd.AddCommand(ipCmd)
}
