package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckScanArgs(t *testing.T) {
	assert.NoError(t, checkScanArgs([]string{"wlan0", "scan"}))
	assert.ErrorIs(t, checkScanArgs([]string{"wlan0", "auth"}), errOnlyScan)
	assert.ErrorIs(t, checkScanArgs([]string{"wlan0;reboot", "scan"}), errBadInterface)
	assert.ErrorIs(t, checkScanArgs([]string{"../../etc", "scan"}), errBadInterface)
}

func TestCheckLinkUpArgs(t *testing.T) {
	assert.NoError(t, checkLinkUpArgs([]string{"link", "set", "wlan0", "up"}))
	assert.ErrorIs(t, checkLinkUpArgs([]string{"link", "set", "wlan0", "down"}), errOnlyLinkUp)
	assert.ErrorIs(t, checkLinkUpArgs([]string{"addr", "flush", "wlan0", "up"}), errOnlyLinkUp)
	assert.ErrorIs(t, checkLinkUpArgs([]string{"link", "set", "", "up"}), errBadInterface)
}
