package network_wifi

import (
	"errors"

	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/sirupsen/logrus"
)

// WirelessNetworks answers "what can I join on this interface". Scanning
// is best effort: a failed scan is logged and reported as no networks.
type WirelessNetworks struct {
	Scanner WifiScanner
	Cache   *ScanCache
	Log     logrus.FieldLogger
}

func NewWirelessNetworks(scanner WifiScanner, cache *ScanCache, log logrus.FieldLogger) *WirelessNetworks {
	if cache == nil {
		cache = NewScanCache(0)
	}
	return &WirelessNetworks{Scanner: scanner, Cache: cache, Log: log}
}

// Networks returns the cached networks for iface, scanning when nothing is
// cached or bypassCache is set.
func (w *WirelessNetworks) Networks(iface string, bypassCache bool) []WirelessNetwork {
	log := utils.OrStandardLogger(w.Log).WithField("iface", iface)

	if !bypassCache {
		if networks, ok := w.Cache.Get(iface); ok {
			return networks
		}
	}

	cells, err := w.Scanner.Scan(iface)
	if err != nil {
		var execErr *utils.ExecutionFailedError
		if errors.As(err, &execErr) && execErr.Output != "" {
			log.Warnf("Wireless scan failed: %v: %s", err, execErr.Output)
		} else {
			log.Warnf("Wireless scan failed: %v", err)
		}
		return []WirelessNetwork{}
	}

	networks := AggregateNetworks(cells)
	w.Cache.Put(iface, networks)
	log.Infof("Found %d wireless networks in %d cells", len(networks), len(cells))
	return networks
}
