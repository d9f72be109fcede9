package cmd

import (
	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/spf13/cobra"
)

var iwlistCmd = &cobra.Command{
	Use:   "iwlist <interface> scan",
	Short: "Run iwlist to scan for wireless networks",
	Args: cobra.MatchAll(cobra.ExactArgs(2), func(cmd *cobra.Command, args []string) error {
		return checkScanArgs(args)
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("iwlist", args[0], "scan")
	},
}

func checkScanArgs(args []string) error {
	if err := checkInterface(args[0]); err != nil {
		return err
	}
	if args[1] != "scan" {
		return errOnlyScan
	}
	return nil
}

func checkInterface(iface string) error {
	if !utils.IsInterfaceName(iface) {
		return errBadInterface
	}
	return nil
}

func init() {
	rootCmd.AddCommand(iwlistCmd)
}
