package network_wifi

import (
	"slices"
	"sync"
	"time"
)

// ScanCache remembers the last networks found on each interface. Entries
// never expire unless a TTL is set.
type ScanCache struct {
	mu      sync.RWMutex
	entries map[string]CachedScan
	ttl     time.Duration
	now     func() time.Time
}

// CachedScan is one interface's entry, exported so snapshots can be
// written to disk.
type CachedScan struct {
	Networks  []WirelessNetwork
	ScannedAt time.Time
}

func NewScanCache(ttl time.Duration) *ScanCache {
	return &ScanCache{
		entries: map[string]CachedScan{},
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *ScanCache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *ScanCache) Get(iface string) ([]WirelessNetwork, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[iface]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(entry.ScannedAt) >= c.ttl {
		return nil, false
	}
	return cloneNetworks(entry.Networks), true
}

func (c *ScanCache) Put(iface string, networks []WirelessNetwork) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[iface] = CachedScan{Networks: cloneNetworks(networks), ScannedAt: c.now()}
}

func (c *ScanCache) Invalidate(iface string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, iface)
}

func (c *ScanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]CachedScan{}
}

// Snapshot copies the entries, expired ones included.
func (c *ScanCache) Snapshot() map[string]CachedScan {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]CachedScan, len(c.entries))
	for iface, entry := range c.entries {
		snapshot[iface] = CachedScan{Networks: cloneNetworks(entry.Networks), ScannedAt: entry.ScannedAt}
	}
	return snapshot
}

// Restore replaces all entries with the snapshot.
func (c *ScanCache) Restore(snapshot map[string]CachedScan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]CachedScan, len(snapshot))
	for iface, entry := range snapshot {
		c.entries[iface] = CachedScan{Networks: cloneNetworks(entry.Networks), ScannedAt: entry.ScannedAt}
	}
}

// Callers get their own copies, changing them leaves the cache alone.
func cloneNetworks(networks []WirelessNetwork) []WirelessNetwork {
	if networks == nil {
		return nil
	}
	clone := make([]WirelessNetwork, len(networks))
	for i, n := range networks {
		n.Rates = slices.Clone(n.Rates)
		n.Channel = cloneInt(n.Channel)
		n.Quality = cloneInt(n.Quality)
		clone[i] = n
	}
	return clone
}

func cloneInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
