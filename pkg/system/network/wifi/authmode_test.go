package network_wifi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthModeNames(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range AllAuthModes() {
		assert.NotEmpty(t, m.Name())
		assert.False(t, seen[m.ShortName()], "duplicate short name %s", m.ShortName())
		seen[m.ShortName()] = true

		found, ok := AuthModeByShortName(m.ShortName())
		assert.True(t, ok)
		assert.Equal(t, m, found)
	}

	_, ok := AuthModeByShortName("wpa3")
	assert.False(t, ok)
	assert.False(t, AuthModeNone.Encrypted())
	assert.True(t, AuthModeWEPOpen.Encrypted())
}

func TestAuthModeJSON(t *testing.T) {
	b, err := json.Marshal(map[string]WirelessAuthMode{"mode": AuthModeWPAEAP})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"wpa_eap"}`, string(b))

	var decoded map[string]WirelessAuthMode
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, AuthModeWPAEAP, decoded["mode"])

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"bogus"}`), &decoded))
	_, err = WirelessAuthMode(42).MarshalText()
	assert.Error(t, err)
}
