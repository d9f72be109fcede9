package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// netconfd runs "<helper> ip link set <iface> up" and
// "<helper> iwlist <iface> scan", so the helper mirrors those arguments.
var rootCmd = &cobra.Command{
	Use:          "_netroot",
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func run(name string, args ...string) error {
	c := exec.Command(name, args...)
	multiWriter := io.MultiWriter(os.Stdout)
	c.Stderr = multiWriter
	c.Stdout = multiWriter
	if err := c.Run(); err != nil {
		return fmt.Errorf("error running %s: %w", name, err)
	}
	return nil
}
