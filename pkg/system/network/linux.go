package network

import (
	"errors"
	"fmt"
	"slices"

	netconfd "github.com/dogeorg/netconfd/pkg"
	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/mdlayher/wifi"
	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/sirupsen/logrus"
)

var _ netconfd.NetworkManager = &NetworkManagerLinux{}

var ErrNotWireless = errors.New("not a wireless interface")

// SystemInterface is a network interface with a hardware address.
type SystemInterface struct {
	Name string
	MAC  string
}

type InterfaceLister interface {
	WifiInterfaces() ([]SystemInterface, error)
	HardwareInterfaces() ([]SystemInterface, error)
}

type NetworkManagerLinux struct {
	Interfaces InterfaceLister
	Wireless   *network_wifi.WirelessNetworks
	Log        logrus.FieldLogger
}

func (t NetworkManagerLinux) GetAvailableNetworks(rescan bool) []netconfd.NetworkConnection {
	log := utils.OrStandardLogger(t.Log)
	availableNetworkConnections := []netconfd.NetworkConnection{}

	wifiInterfaces, err := t.Interfaces.WifiInterfaces()
	if err != nil {
		log.Warnf("Could not list wifi interfaces: %v", err)
	}

	wifiInterfaceNames := []string{}

	for _, wifiInterface := range wifiInterfaces {
		availableNetworkConnections = append(availableNetworkConnections, netconfd.NetworkWifi{
			Type:      "wifi",
			Interface: wifiInterface.Name,
			MAC:       wifiInterface.MAC,
			Networks:  t.Wireless.Networks(wifiInterface.Name, rescan),
		})
		wifiInterfaceNames = append(wifiInterfaceNames, wifiInterface.Name)
	}

	allInterfaces, err := t.Interfaces.HardwareInterfaces()
	if err != nil {
		log.Warnf("Failed to fetch system interfaces: %v", err)
		return availableNetworkConnections
	}

	for _, systemInterface := range allInterfaces {
		// If we've seen this as a wifi network, ignore it.
		if slices.Contains(wifiInterfaceNames, systemInterface.Name) {
			continue
		}

		availableNetworkConnections = append(availableNetworkConnections, netconfd.NetworkEthernet{
			Type:      "ethernet",
			Interface: systemInterface.Name,
			MAC:       systemInterface.MAC,
		})
	}

	return availableNetworkConnections
}

func (t NetworkManagerLinux) GetWirelessNetworks(iface string, rescan bool) ([]network_wifi.WirelessNetwork, error) {
	wifiInterfaces, err := t.Interfaces.WifiInterfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	for _, wifiInterface := range wifiInterfaces {
		if wifiInterface.Name == iface {
			return t.Wireless.Networks(iface, rescan), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotWireless, iface)
}

// SystemInterfaces asks nl80211 for wireless interfaces and the kernel for
// everything else.
type SystemInterfaces struct{}

func (SystemInterfaces) WifiInterfaces() ([]SystemInterface, error) {
	wifiClient, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer wifiClient.Close()

	ifaces, err := wifiClient.Interfaces()
	if err != nil {
		return nil, err
	}

	result := []SystemInterface{}
	for _, iface := range ifaces {
		// Wiphys without a netdev have no name and cannot be scanned.
		if iface.Name == "" {
			continue
		}
		result = append(result, SystemInterface{Name: iface.Name, MAC: iface.HardwareAddr.String()})
	}
	return result, nil
}

func (SystemInterfaces) HardwareInterfaces() ([]SystemInterface, error) {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return nil, err
	}

	result := []SystemInterface{}
	for _, iface := range ifaces {
		// Ignore anything that doesn't have a hardware address.
		if iface.HardwareAddr == "" || slices.Contains(iface.Flags, "loopback") {
			continue
		}
		result = append(result, SystemInterface{Name: iface.Name, MAC: iface.HardwareAddr})
	}
	return result, nil
}
