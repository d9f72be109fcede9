package cmd

import (
	"fmt"
	"os"

	"github.com/dogeorg/netconfd/pkg/client"
	"github.com/dogeorg/netconfd/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get netconf version information, and netconfd's with --remote",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion("netconf", version.GetRelease())

		remote, _ := cmd.Flags().GetString("remote")
		if remote == "" {
			return
		}

		daemon, err := client.New(remote).Version()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		printVersion("netconfd", daemon)
	},
}

func printVersion(name string, v *version.VersionInfo) {
	fmt.Printf("%s release: %s\n", name, v.Release)
	fmt.Printf("%s git: %s\n", name, v.Git.Commit)
	fmt.Printf("%s dirty: %t\n", name, v.Git.Dirty)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
