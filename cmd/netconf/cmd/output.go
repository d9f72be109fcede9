package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printNetworks(w io.Writer, networks []network_wifi.WirelessNetwork) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ESSID\tQUALITY\tCHANNEL\tMAX RATE\tSECURITY")
	for _, n := range networks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			n.ESSID,
			optionalInt(n.Quality),
			optionalInt(n.Channel),
			network_wifi.MaxBitrate(n.Rates),
			n.AuthMode.Name(),
		)
	}
	return tw.Flush()
}

func optionalInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n  ")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
