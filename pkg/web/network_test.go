package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	netconfd "github.com/dogeorg/netconfd/pkg"
	"github.com/dogeorg/netconfd/pkg/system/network"
	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNetworkManager struct {
	wireless map[string][]network_wifi.WirelessNetwork
	rescans  []bool
	err      error
}

func (f *fakeNetworkManager) GetAvailableNetworks(rescan bool) []netconfd.NetworkConnection {
	f.rescans = append(f.rescans, rescan)
	conns := []netconfd.NetworkConnection{netconfd.NetworkEthernet{Type: "ethernet", Interface: "eth0"}}
	for iface, networks := range f.wireless {
		conns = append(conns, netconfd.NetworkWifi{Type: "wifi", Interface: iface, Networks: networks})
	}
	return conns
}

func (f *fakeNetworkManager) GetWirelessNetworks(iface string, rescan bool) ([]network_wifi.WirelessNetwork, error) {
	f.rescans = append(f.rescans, rescan)
	if f.err != nil {
		return nil, f.err
	}
	networks, ok := f.wireless[iface]
	if !ok {
		return nil, fmt.Errorf("%w: %s", network.ErrNotWireless, iface)
	}
	return networks, nil
}

func newTestServer(t *testing.T, nm netconfd.NetworkManager) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(RESTAPI(netconfd.DefaultConfig(), nm, nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, into any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	return resp
}

func TestGetNetwork(t *testing.T) {
	quality := 65
	nm := &fakeNetworkManager{wireless: map[string][]network_wifi.WirelessNetwork{
		"wlan0": {{
			ESSID:    "Home",
			Quality:  &quality,
			Rates:    []network_wifi.Bitrate{54_000_000},
			AuthMode: network_wifi.AuthModeWPAPSK,
		}},
	}}
	srv := newTestServer(t, nm)

	var body struct {
		Success  bool             `json:"success"`
		Networks []map[string]any `json:"networks"`
	}
	resp := getJSON(t, srv.URL+"/system/network/list", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.True(t, body.Success)
	require.Len(t, body.Networks, 2)
	assert.Equal(t, "ethernet", body.Networks[0]["type"])

	wifi := body.Networks[1]
	assert.Equal(t, "wlan0", wifi["interface"])
	networks := wifi["networks"].([]any)
	require.Len(t, networks, 1)
	n := networks[0].(map[string]any)
	assert.Equal(t, "Home", n["essid"])
	assert.Equal(t, "wpa_psk", n["authMode"])
	assert.Equal(t, []any{"54 Mb/s"}, n["rates"])
	assert.Equal(t, float64(65), n["quality"])
	assert.Nil(t, n["channel"])

	assert.Equal(t, []bool{false}, nm.rescans)
}

func TestGetNetworkRescan(t *testing.T) {
	nm := &fakeNetworkManager{}
	srv := newTestServer(t, nm)

	var body map[string]any
	getJSON(t, srv.URL+"/system/network/list?rescan=true", &body)
	getJSON(t, srv.URL+"/system/network/list?rescan", &body)
	getJSON(t, srv.URL+"/system/network/list?rescan=0", &body)
	assert.Equal(t, []bool{true, true, false}, nm.rescans)

	resp := getJSON(t, srv.URL+"/system/network/list?rescan=maybe", &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetWirelessNetworks(t *testing.T) {
	nm := &fakeNetworkManager{wireless: map[string][]network_wifi.WirelessNetwork{
		"wlan0": {{ESSID: "Home"}, {ESSID: "Cafe"}},
	}}
	srv := newTestServer(t, nm)

	var body struct {
		Success   bool                           `json:"success"`
		Interface string                         `json:"interface"`
		Networks  []network_wifi.WirelessNetwork `json:"networks"`
	}
	resp := getJSON(t, srv.URL+"/system/network/wifi/wlan0?rescan=true", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "wlan0", body.Interface)
	require.Len(t, body.Networks, 2)
	assert.Equal(t, "Cafe", body.Networks[1].ESSID)
	assert.Equal(t, []bool{true}, nm.rescans)
}

func TestGetWirelessNetworksErrors(t *testing.T) {
	nm := &fakeNetworkManager{wireless: map[string][]network_wifi.WirelessNetwork{}}
	srv := newTestServer(t, nm)

	var body struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	resp := getJSON(t, srv.URL+"/system/network/wifi/eth0", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, body.Error.Code)

	resp = getJSON(t, srv.URL+"/system/network/wifi/this-name-is-far-too-long", &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	nm.err = assert.AnError
	resp = getJSON(t, srv.URL+"/system/network/wifi/wlan0", &body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetVersion(t *testing.T) {
	srv := newTestServer(t, &fakeNetworkManager{})

	var body struct {
		Success bool `json:"success"`
		Version struct {
			Release string `json:"release"`
		} `json:"version"`
	}
	getJSON(t, srv.URL+"/system/version", &body)
	assert.True(t, body.Success)
	assert.Equal(t, "unknown", body.Version.Release)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, &fakeNetworkManager{})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/system/version", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://setup.local")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestGetOriginIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.20:51234"
	assert.Equal(t, "192.168.1.20", getOriginIP(r))

	r.Header.Set("X-Forwarded-For", "10.0.0.1, 192.168.1.1")
	assert.Equal(t, "10.0.0.1", getOriginIP(r))
}
