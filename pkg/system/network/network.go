package network

import (
	netconfd "github.com/dogeorg/netconfd/pkg"
	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/sirupsen/logrus"
)

func NewNetworkManager(wireless *network_wifi.WirelessNetworks, log logrus.FieldLogger) netconfd.NetworkManager {
	return NetworkManagerLinux{
		Interfaces: SystemInterfaces{},
		Wireless:   wireless,
		Log:        log,
	}
}
