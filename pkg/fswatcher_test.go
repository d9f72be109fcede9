package netconfd

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigWatcherReloads(t *testing.T) {
	path := writeConfig(t, "cache_ttl = 1m\n")
	changes := make(chan ServerConfig, 4)

	w, err := NewConfigWatcher(path, DefaultConfig(), func(c ServerConfig) { changes <- c }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("cache_ttl = 2m\n"), 0o644))

	// A write can show up as a truncate followed by the write itself.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.CacheTTL == 2*time.Minute {
				return
			}
		case <-timeout:
			t.Fatal("no reload after config write")
		}
	}
}
