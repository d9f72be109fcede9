package network_wifi

import "fmt"

type WirelessAuthMode int

const (
	AuthModeNone WirelessAuthMode = iota
	AuthModeWEPOpen
	AuthModeWEPShared
	AuthModeWPAPSK
	AuthModeWPAEAP
)

var authModeNames = map[WirelessAuthMode][2]string{
	AuthModeNone:      {"No Encryption", "no_encryption"},
	AuthModeWEPOpen:   {"WEP - Open", "wep_open"},
	AuthModeWEPShared: {"WEP - Shared Key", "wep_shared"},
	AuthModeWPAPSK:    {"WPA-PSK (\"home\")", "wpa_psk"},
	AuthModeWPAEAP:    {"WPA-EAP (\"Enterprise\")", "wpa_eap"},
}

func AllAuthModes() []WirelessAuthMode {
	return []WirelessAuthMode{AuthModeNone, AuthModeWEPOpen, AuthModeWEPShared, AuthModeWPAPSK, AuthModeWPAEAP}
}

// Name is the label shown to users.
func (m WirelessAuthMode) Name() string {
	if n, ok := authModeNames[m]; ok {
		return n[0]
	}
	return fmt.Sprintf("unknown auth mode %d", int(m))
}

func (m WirelessAuthMode) ShortName() string {
	if n, ok := authModeNames[m]; ok {
		return n[1]
	}
	return ""
}

func (m WirelessAuthMode) String() string {
	return m.ShortName()
}

// Encrypted reports whether joining the network needs a key.
func (m WirelessAuthMode) Encrypted() bool {
	return m != AuthModeNone
}

func AuthModeByShortName(name string) (WirelessAuthMode, bool) {
	for _, m := range AllAuthModes() {
		if m.ShortName() == name {
			return m, true
		}
	}
	return AuthModeNone, false
}

func (m WirelessAuthMode) MarshalText() ([]byte, error) {
	if _, ok := authModeNames[m]; !ok {
		return nil, fmt.Errorf("unknown auth mode %d", int(m))
	}
	return []byte(m.ShortName()), nil
}

func (m *WirelessAuthMode) UnmarshalText(text []byte) error {
	parsed, ok := AuthModeByShortName(string(text))
	if !ok {
		return fmt.Errorf("unknown auth mode %q", string(text))
	}
	*m = parsed
	return nil
}
