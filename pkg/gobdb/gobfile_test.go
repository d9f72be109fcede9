package gobdb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGobFileScanSnapshot(t *testing.T) {
	channel := 11
	quality := 65
	snapshot := map[string]network_wifi.CachedScan{
		"wlan0": {
			Networks: []network_wifi.WirelessNetwork{{
				ESSID:    "Home",
				Mode:     "Master",
				Channel:  &channel,
				Quality:  &quality,
				Rates:    []network_wifi.Bitrate{5_500_000, 54_000_000},
				AuthMode: network_wifi.AuthModeWPAPSK,
			}},
			ScannedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	gf := NewGobFile[map[string]network_wifi.CachedScan](filepath.Join(t.TempDir(), "scan.gob"))
	require.NoError(t, gf.Save(snapshot))

	loaded, err := gf.Load()
	require.NoError(t, err)
	require.Contains(t, loaded, "wlan0")
	assert.Equal(t, snapshot["wlan0"].Networks, loaded["wlan0"].Networks)
	assert.True(t, snapshot["wlan0"].ScannedAt.Equal(loaded["wlan0"].ScannedAt))
}

func TestGobFileLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewGobFile[int](filepath.Join(dir, "missing.gob")).Load()
	assert.ErrorIs(t, err, ErrNotFound)

	empty := filepath.Join(dir, "empty.gob")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = NewGobFile[int](empty).Load()
	assert.ErrorContains(t, err, "is empty")
}

func TestGobFileSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	gf := NewGobFile[string](filepath.Join(dir, "value.gob"))
	require.NoError(t, gf.Save("hello"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
