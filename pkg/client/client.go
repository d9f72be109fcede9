package client

import (
	"fmt"
	"strconv"

	network_wifi "github.com/dogeorg/netconfd/pkg/system/network/wifi"
	"github.com/dogeorg/netconfd/pkg/version"
	"github.com/go-resty/resty/v2"
)

// Client talks to a running netconfd over its REST API.
type Client struct {
	client *resty.Client
}

// Connection is either an ethernet or a wifi entry of the network list,
// ethernet entries have no networks.
type Connection struct {
	Type      string                         `json:"type"`
	Interface string                         `json:"interface"`
	MAC       string                         `json:"mac"`
	Networks  []network_wifi.WirelessNetwork `json:"networks"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func New(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")
	return &Client{client: client}
}

func (c *Client) AvailableNetworks(rescan bool) ([]Connection, error) {
	var result struct {
		Networks []Connection `json:"networks"`
	}
	if err := c.get("/system/network/list", rescan, &result); err != nil {
		return nil, err
	}
	return result.Networks, nil
}

func (c *Client) WirelessNetworks(iface string, rescan bool) ([]network_wifi.WirelessNetwork, error) {
	var result struct {
		Networks []network_wifi.WirelessNetwork `json:"networks"`
	}
	if err := c.get("/system/network/wifi/"+iface, rescan, &result); err != nil {
		return nil, err
	}
	return result.Networks, nil
}

func (c *Client) Version() (*version.VersionInfo, error) {
	var result struct {
		Version version.VersionInfo `json:"version"`
	}
	if err := c.get("/system/version", false, &result); err != nil {
		return nil, err
	}
	return &result.Version, nil
}

func (c *Client) get(path string, rescan bool, into any) error {
	var errPayload apiError
	req := c.client.R().SetResult(into).SetError(&errPayload)
	if rescan {
		req.SetQueryParam("rescan", strconv.FormatBool(rescan))
	}

	resp, err := req.Get(path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		if errPayload.Error.Message != "" {
			return fmt.Errorf("netconfd returned %d: %s", resp.StatusCode(), errPayload.Error.Message)
		}
		return fmt.Errorf("netconfd returned %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
