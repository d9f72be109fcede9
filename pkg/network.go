package netconfd

import (
	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
)

// see ./system/network for implementations

type NetworkManager interface {
	GetAvailableNetworks(rescan bool) []NetworkConnection
	GetWirelessNetworks(iface string, rescan bool) ([]network_wifi.WirelessNetwork, error)
}

// A NetworkConnection is one of NetworkEthernet or NetworkWifi.
type NetworkConnection any

type NetworkEthernet struct {
	Type      string `json:"type"`
	Interface string `json:"interface"`
	MAC       string `json:"mac"`
}

type NetworkWifi struct {
	Type      string                         `json:"type"`
	Interface string                         `json:"interface"`
	MAC       string                         `json:"mac"`
	Networks  []network_wifi.WirelessNetwork `json:"networks"`
}
