package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dogeorg/netconfd/pkg/client"
	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var wifiScanCmd = &cobra.Command{
	Use:   "wifi-scan <interface>",
	Short: "Scan for wireless networks on an interface",
	Long: `Scan for wireless networks on an interface.
Without --remote the scan runs here, which needs root or --root-helper.

Example:
  netconf wifi-scan wlan0
  netconf wifi-scan wlan0 --remote http://127.0.0.1:8080 --json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		iface := args[0]
		if !utils.IsInterfaceName(iface) {
			fmt.Fprintf(os.Stderr, "Error: %q is not a valid interface name\n", iface)
			os.Exit(1)
		}

		remote, _ := cmd.Flags().GetString("remote")
		asJSON, _ := cmd.Flags().GetBool("json")

		var networks []network_wifi.WirelessNetwork
		if remote != "" {
			var err error
			networks, err = client.New(remote).WirelessNetworks(iface, true)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
		} else {
			rootHelper, _ := cmd.Flags().GetString("root-helper")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			runner := utils.CommandRunner{Timeout: timeout, Log: logrus.StandardLogger()}
			if rootHelper != "" {
				runner.Prefix = []string{rootHelper}
			}

			scanner := network_wifi.NewWifiScanner(runner, logrus.StandardLogger())
			networks = network_wifi.NewWirelessNetworks(scanner, nil, logrus.StandardLogger()).Networks(iface, true)
		}

		if asJSON {
			exitOnError(printJSON(os.Stdout, networks))
			return
		}

		if len(networks) == 0 {
			fmt.Println("No networks found.")
			return
		}
		exitOnError(printNetworks(os.Stdout, networks))
	},
}

func init() {
	rootCmd.AddCommand(wifiScanCmd)

	wifiScanCmd.Flags().Bool("json", false, "Print networks as JSON")
	wifiScanCmd.Flags().String("root-helper", "", "Run ip/iwlist through this helper")
	wifiScanCmd.Flags().Duration("timeout", 30*time.Second, "Give up on a command after this long")
}
