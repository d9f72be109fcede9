package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	netconfd "github.com/dogeorg/netconfd/pkg"
	"github.com/dogeorg/netconfd/pkg/gobdb"
	"github.com/dogeorg/netconfd/pkg/system/network"
	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/dogeorg/netconfd/pkg/web"
	"github.com/sirupsen/logrus"
)

type server struct {
	config     netconfd.ServerConfig
	configFile string
	log        *logrus.Logger
}

func Server(config netconfd.ServerConfig, configFile string) server {
	log := logrus.StandardLogger()
	if config.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return server{config: config, configFile: configFile, log: log}
}

func (t server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	/* ----------------------------------------------------------------------- */
	// Set up our system interfaces so we can talk to the host OS

	runner := utils.CommandRunner{
		Prefix:  t.config.CommandPrefix(),
		Timeout: t.config.CommandTimeout,
		Log:     t.log,
	}
	scanner := network_wifi.NewWifiScanner(runner, t.log)

	cache := network_wifi.NewScanCache(t.config.CacheTTL)
	var cacheFile *gobdb.GobFile[map[string]network_wifi.CachedScan]
	if t.config.CacheFile != "" {
		cacheFile = gobdb.NewGobFile[map[string]network_wifi.CachedScan](t.config.CacheFile)
		snapshot, err := cacheFile.Load()
		switch {
		case err == nil:
			cache.Restore(snapshot)
			t.log.Infof("Loaded cached scans for %d interfaces from %s", len(snapshot), cacheFile.Filename())
		case errors.Is(err, gobdb.ErrNotFound):
			t.log.Infof("No scan cache at %s yet", cacheFile.Filename())
		default:
			t.log.Warnf("Ignoring scan cache: %v", err)
		}
	}

	wireless := network_wifi.NewWirelessNetworks(scanner, cache, t.log)
	networkManager := network.NewNetworkManager(wireless, t.log)

	/* ----------------------------------------------------------------------- */
	// Pick up cache_ttl changes without a restart

	if t.configFile != "" {
		watcher, err := netconfd.NewConfigWatcher(t.configFile, netconfd.DefaultConfig(), func(c netconfd.ServerConfig) {
			cache.SetTTL(c.CacheTTL)
			t.log.Infof("Scan cache TTL is now %s", c.CacheTTL)
		}, t.log)
		if err != nil {
			t.log.Warnf("Not watching %s: %v", t.configFile, err)
		} else {
			go watcher.Run(ctx)
		}
	}

	/* ----------------------------------------------------------------------- */
	// Setup our external APIs

	rest := web.RESTAPI(t.config, networkManager, t.log)
	err := rest.Run(ctx)

	if cacheFile != nil {
		if saveErr := cacheFile.Save(cache.Snapshot()); saveErr != nil {
			t.log.Warnf("Failed to persist scan cache: %v", saveErr)
		}
	}

	return err
}
