package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "netconf",
	Short: "netconf scans for networks and talks to netconfd",
	Long:  `netconf scans for networks and talks to netconfd`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().String("remote", "", "Base URL of a running netconfd, eg. http://127.0.0.1:8080")
}
