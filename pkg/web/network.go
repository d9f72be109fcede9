package web

import (
	"errors"
	"net/http"

	"github.com/dogeorg/netconfd/pkg/system/network"
	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/dogeorg/netconfd/pkg/version"
)

func (t api) getNetwork(w http.ResponseWriter, r *http.Request) {
	rescan, err := queryBool(r, "rescan")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid rescan parameter")
		return
	}

	sendResponse(w, map[string]any{
		"success":  true,
		"networks": t.nm.GetAvailableNetworks(rescan),
	})
}

func (t api) getWirelessNetworks(w http.ResponseWriter, r *http.Request) {
	iface := r.PathValue("iface")
	if !utils.IsInterfaceName(iface) {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid interface name")
		return
	}

	rescan, err := queryBool(r, "rescan")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid rescan parameter")
		return
	}

	networks, err := t.nm.GetWirelessNetworks(iface, rescan)
	if errors.Is(err, network.ErrNotWireless) {
		sendErrorResponse(w, http.StatusNotFound, "No such wireless interface")
		return
	}
	if err != nil {
		t.log.Warnf("Failed to list wireless networks on %s: %v", iface, err)
		sendErrorResponse(w, http.StatusInternalServerError, "Failed to list wireless networks")
		return
	}

	sendResponse(w, map[string]any{
		"success":   true,
		"interface": iface,
		"networks":  networks,
	})
}

func (t api) getVersion(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, map[string]any{
		"success": true,
		"version": version.GetRelease(),
	})
}
