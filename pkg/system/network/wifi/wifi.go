package network_wifi

import (
	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/sirupsen/logrus"
)

// WirelessCell is a single access point or ad-hoc station seen in a scan.
type WirelessCell struct {
	Address  string
	ESSID    string // empty for hidden networks
	Mode     string
	Channel  *int
	Rates    []Bitrate
	Quality  *int
	AuthMode WirelessAuthMode
}

// WirelessNetwork is what users pick from. Several cells can share an
// ESSID, the network carries the values of the strongest one.
type WirelessNetwork struct {
	ESSID    string           `json:"essid"`
	Mode     string           `json:"mode"`
	Channel  *int             `json:"channel"`
	Rates    []Bitrate        `json:"rates"`
	Quality  *int             `json:"quality"`
	AuthMode WirelessAuthMode `json:"authMode"`
}

type WifiScanner interface {
	Scan(interfaceName string) ([]WirelessCell, error)
}

// AggregateNetworks returns one network per ESSID in the order the ESSIDs
// were first seen. Hidden cells are left out.
func AggregateNetworks(cells []WirelessCell) []WirelessNetwork {
	order := []string{}
	best := map[string]WirelessCell{}

	for _, cell := range cells {
		if cell.ESSID == "" {
			continue
		}

		current, seen := best[cell.ESSID]
		if !seen {
			order = append(order, cell.ESSID)
			best[cell.ESSID] = cell
			continue
		}

		if stronger(cell, current) {
			best[cell.ESSID] = cell
		}
	}

	networks := make([]WirelessNetwork, 0, len(order))
	for _, essid := range order {
		cell := best[essid]
		networks = append(networks, WirelessNetwork{
			ESSID:    cell.ESSID,
			Mode:     cell.Mode,
			Channel:  cell.Channel,
			Rates:    cell.Rates,
			Quality:  cell.Quality,
			AuthMode: cell.AuthMode,
		})
	}
	return networks
}

// A missing quality loses against any reported one. Equal qualities keep
// the cell seen first.
func stronger(candidate, current WirelessCell) bool {
	if candidate.Quality == nil {
		return false
	}
	if current.Quality == nil {
		return true
	}
	return *candidate.Quality > *current.Quality
}

func NewWifiScanner(runner utils.Runner, log logrus.FieldLogger) WifiScanner {
	return IWListScanner{Runner: runner, Log: log}
}
