package cmd

import (
	"fmt"
	"os"

	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/spf13/cobra"
)

var bitrateCmd = &cobra.Command{
	Use:   "bitrate <rate>...",
	Short: "Convert rates like \"5.5 Mb/s\" to bits per second and back",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, arg := range args {
			rate, err := network_wifi.ParseBitrate(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				failed = true
				continue
			}
			fmt.Printf("%s\t%d\t%s\n", arg, rate.Bits(), rate)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(bitrateCmd)
}
