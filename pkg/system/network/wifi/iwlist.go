package network_wifi

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dogeorg/netconfd/pkg/utils"
	"github.com/sirupsen/logrus"
)

var _ WifiScanner = &IWListScanner{}

var cellRegex = regexp.MustCompile(`Cell \d+ -`)
var leadingDigitsRegex = regexp.MustCompile(`^\d+`)
var frequencyChannelRegex = regexp.MustCompile(`\(Channel (\d+)\)`)

type IWListScanner struct {
	Runner utils.Runner
	Log    logrus.FieldLogger
}

// Scan brings the interface up and asks iwlist for the cells in range.
func (s IWListScanner) Scan(interfaceName string) ([]WirelessCell, error) {
	log := utils.OrStandardLogger(s.Log).WithField("iface", interfaceName)

	if _, err := s.Runner.Run("ip", "link", "set", interfaceName, "up"); err != nil {
		return nil, err
	}

	out, err := s.Runner.Run("iwlist", interfaceName, "scan")
	if err != nil {
		return nil, err
	}

	cells := ParseIWListOutput(out, log)
	log.Debugf("iwlist reported %d cells", len(cells))
	return cells, nil
}

type scanField struct {
	key   string
	value string
}

type scanFields []scanField

func (f scanFields) first(key string) (string, bool) {
	for _, field := range f {
		if field.key == key {
			return field.value, true
		}
	}
	return "", false
}

func (f scanFields) all(key string) []string {
	values := []string{}
	for _, field := range f {
		if field.key == key {
			values = append(values, field.value)
		}
	}
	return values
}

// ParseIWListOutput turns `iwlist <iface> scan` output into cells. Anything
// before the first "Cell NN -" marker is ignored, as are cells without any
// recognisable fields.
func ParseIWListOutput(output string, log logrus.FieldLogger) []WirelessCell {
	log = utils.OrStandardLogger(log)

	cells := []WirelessCell{}
	sections := cellRegex.Split(output, -1)
	if len(sections) < 2 {
		return cells
	}

	for _, section := range sections[1:] {
		fields := tokenizeCell(section)
		if len(fields) == 0 {
			continue
		}
		cells = append(cells, cellFromFields(fields, log))
	}

	return cells
}

// Fields whose values iwlist spreads over several lines.
var wrappingKeys = map[string]bool{
	"Bit Rates": true,
	"IE":        true,
}

// tokenizeCell splits a cell block into fields. iwlist indents every field
// of a cell by the same amount (20 spaces) and wraps long values onto lines
// indented further, so after removing the block indent a line starting in
// column zero opens a new field. An indented line continues the last field
// when that field wraps, otherwise it is a field of its own.
func tokenizeCell(section string) scanFields {
	lines := strings.Split(section, "\n")
	// The first line follows the "Cell NN -" marker and carries no indent.
	lines[0] = strings.TrimLeft(lines[0], " \t")
	indent := blockIndent(lines[1:])

	fields := scanFields{}
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i > 0 {
			line = trimIndent(line, indent)
		}

		if line[0] == ' ' || line[0] == '\t' {
			if len(fields) > 0 && wrappingKeys[fields[len(fields)-1].key] {
				last := &fields[len(fields)-1]
				last.value += "\n" + strings.TrimSpace(line)
				continue
			}
			line = strings.TrimSpace(line)
		}

		sep := strings.IndexAny(line, ":=")
		if sep <= 0 {
			continue
		}
		fields = append(fields, scanField{
			key:   strings.TrimSpace(line[:sep]),
			value: strings.TrimSpace(line[sep+1:]),
		})
	}

	return fields
}

// blockIndent is the indent of the first field line, the ones after it
// share it unless they are continuations.
func blockIndent(lines []string) int {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return len(line) - len(strings.TrimLeft(line, " "))
	}
	return 0
}

func trimIndent(line string, indent int) string {
	n := 0
	for n < indent && n < len(line) && line[n] == ' ' {
		n++
	}
	return line[n:]
}

func cellFromFields(fields scanFields, log logrus.FieldLogger) WirelessCell {
	cell := WirelessCell{Rates: []Bitrate{}}

	cell.Address, _ = fields.first("Address")
	cell.Mode, _ = fields.first("Mode")

	if essid, ok := fields.first("ESSID"); ok {
		essid = strings.TrimSuffix(strings.TrimPrefix(essid, `"`), `"`)
		// Some drivers report hidden networks as a run of escaped NULs.
		if strings.ReplaceAll(essid, `\x00`, "") != "" {
			cell.ESSID = essid
		}
	}

	if channel, ok := fields.first("Channel"); ok {
		cell.Channel = leadingInt(channel)
	} else if freq, ok := fields.first("Frequency"); ok {
		// eg. "2.457 GHz (Channel 10)"
		if m := frequencyChannelRegex.FindStringSubmatch(freq); m != nil {
			cell.Channel = leadingInt(m[1])
		}
	}

	if quality, ok := fields.first("Quality"); ok {
		cell.Quality = leadingInt(strings.SplitN(quality, "/", 2)[0])
	}

	rates := strings.Join(fields.all("Bit Rates"), ";")
	for _, token := range strings.FieldsFunc(rates, func(r rune) bool { return r == ';' || r == '\n' }) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		rate, err := ParseBitrate(token)
		if err != nil {
			log.WithField("essid", cell.ESSID).Warnf("Skipping bitrate: %v", err)
			continue
		}
		cell.Rates = append(cell.Rates, rate)
	}

	cell.AuthMode = authModeFromFields(fields)
	return cell
}

// authModeFromFields looks at the WPA/RSN information elements first, an
// element advertising the 802.1x authentication suite means EAP. Without
// one, an enabled encryption key means WEP. Beacons do not tell open from
// shared key WEP apart, so WEP cells are reported as open.
func authModeFromFields(fields scanFields) WirelessAuthMode {
	wpa := false
	for _, ie := range fields.all("IE") {
		if strings.HasPrefix(ie, "Unknown:") {
			continue
		}
		firstLine := strings.SplitN(ie, "\n", 2)[0]
		if !strings.Contains(firstLine, "WPA") {
			continue
		}
		if strings.Contains(strings.ToLower(ie), "802.1x") {
			return AuthModeWPAEAP
		}
		wpa = true
	}
	if wpa {
		return AuthModeWPAPSK
	}

	if key, ok := fields.first("Encryption key"); ok && key == "on" {
		return AuthModeWEPOpen
	}

	return AuthModeNone
}

func leadingInt(s string) *int {
	digits := leadingDigitsRegex.FindString(strings.TrimSpace(s))
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}
