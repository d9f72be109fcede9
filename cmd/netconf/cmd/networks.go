package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dogeorg/netconfd/pkg/client"
	"github.com/spf13/cobra"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the connections a running netconfd can see",
	Run: func(cmd *cobra.Command, args []string) {
		remote, _ := cmd.Flags().GetString("remote")
		if remote == "" {
			fmt.Fprintln(os.Stderr, "Error: --remote is required")
			os.Exit(1)
		}
		rescan, _ := cmd.Flags().GetBool("rescan")
		asJSON, _ := cmd.Flags().GetBool("json")

		conns, err := client.New(remote).AvailableNetworks(rescan)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		if asJSON {
			exitOnError(printJSON(os.Stdout, conns))
			return
		}

		for _, conn := range conns {
			fmt.Printf("%s (%s) %s\n", conn.Interface, conn.Type, conn.MAC)
			if conn.Type != "wifi" {
				continue
			}
			if len(conn.Networks) == 0 {
				fmt.Println("  No networks found.")
				continue
			}
			var out strings.Builder
			exitOnError(printNetworks(&out, conn.Networks))
			fmt.Println(indent(out.String()))
		}
	},
}

func init() {
	rootCmd.AddCommand(networksCmd)

	networksCmd.Flags().Bool("rescan", false, "Ask netconfd to scan again instead of using cached results")
	networksCmd.Flags().Bool("json", false, "Print connections as JSON")
}
