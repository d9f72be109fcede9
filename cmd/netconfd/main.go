package main

import (
	"flag"
	"os"

	netconfd "github.com/dogeorg/netconfd/pkg"
	"github.com/sirupsen/logrus"
)

func main() {
	var configFile string
	var port int
	var bind string
	var rootHelper string
	var verbose bool
	var help bool

	config := netconfd.DefaultConfig()

	flag.StringVar(&configFile, "config", "", "INI config file")
	flag.IntVar(&port, "port", config.Port, "REST API Port")
	flag.StringVar(&bind, "addr", config.Bind, "Address to bind to")
	flag.StringVar(&rootHelper, "root-helper", "", "Run ip/iwlist through this helper, eg. /run/wrappers/bin/_netroot")
	flag.BoolVar(&verbose, "v", false, "Be verbose")
	flag.BoolVar(&help, "h", false, "Get help")
	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	if configFile != "" {
		if err := config.LoadFromFile(configFile); err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			config.Port = port
		case "addr":
			config.Bind = bind
		case "root-helper":
			config.RootHelper = rootHelper
		case "v":
			config.Verbose = verbose
		}
	})

	srv := Server(config, configFile)
	if err := srv.Start(); err != nil {
		logrus.Fatal(err)
	}
}
