package utils

import (
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInterfaceName(t *testing.T) {
	for _, name := range []string{"wlan0", "wlp2s0", "eth0.100", "br-lan", "wlx00c0ca_ab"} {
		assert.True(t, IsInterfaceName(name), name)
	}
	for _, name := range []string{"", ".", "..", "wlan0 up", "wlan0;reboot", "../etc", "averyveryverylongname"} {
		assert.False(t, IsInterfaceName(name), name)
	}
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh on this system")
	}
}

func TestCommandRunnerRun(t *testing.T) {
	requireShell(t)

	out, err := CommandRunner{}.Run("sh", "-c", "echo out; echo err 1>&2")
	require.NoError(t, err)
	assert.Contains(t, out, "out\n")
	assert.Contains(t, out, "err\n")
}

func TestCommandRunnerPrefix(t *testing.T) {
	requireShell(t)

	out, err := CommandRunner{Prefix: []string{"sh", "-c", `echo "$0 $1"`}}.Run("iwlist", "wlan0")
	require.NoError(t, err)
	assert.Equal(t, "iwlist wlan0\n", out)
}

func TestCommandRunnerFailure(t *testing.T) {
	requireShell(t)

	out, err := CommandRunner{}.Run("sh", "-c", "echo broken; exit 3")
	require.Error(t, err)

	var execErr *ExecutionFailedError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, []string{"sh", "-c", "echo broken; exit 3"}, execErr.Command)
	assert.Equal(t, "broken\n", execErr.Output)
	assert.Equal(t, out, execErr.Output)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestCommandRunnerMissingBinary(t *testing.T) {
	_, err := CommandRunner{}.Run("definitely-not-a-real-binary-netconfd")

	var execErr *ExecutionFailedError
	assert.True(t, errors.As(err, &execErr))
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestCommandRunnerTimeout(t *testing.T) {
	requireShell(t)

	_, err := CommandRunner{Timeout: 50 * time.Millisecond}.Run("sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.ErrorContains(t, err, "timed out")
}
