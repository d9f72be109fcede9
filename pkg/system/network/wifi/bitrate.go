package network_wifi

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var ErrBitrateParse = errors.New("cannot parse bitrate")

var bitrateRegex = regexp.MustCompile(`^(\d+)(?:\.(\d+))?\s?(b|kb|Mb|Gb)?(?:/s)?$`)

type bitrateUnit struct {
	suffix string
	digits int
}

// Ordered largest first, String relies on that.
var bitrateUnits = []bitrateUnit{
	{"Gb", 9},
	{"Mb", 6},
	{"kb", 3},
	{"b", 0},
}

// Bitrate is a data rate in bits per second.
type Bitrate uint64

// ParseBitrate reads rates the way iwlist prints them, eg. "54 Mb/s",
// "5.5 Mb/s" or "64". Without a unit the value is taken as bits.
func ParseBitrate(input string) (Bitrate, error) {
	m := bitrateRegex.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBitrateParse, input)
	}

	digits := 0
	for _, u := range bitrateUnits {
		if u.suffix == m[3] {
			digits = u.digits
		}
	}
	multiplier := pow10(digits)

	whole, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil || whole > ^uint64(0)/multiplier {
		return 0, fmt.Errorf("%w: %q is out of range", ErrBitrateParse, input)
	}
	bits := whole * multiplier

	// Anything finer than a single bit is dropped.
	if frac := m[2]; frac != "" && digits > 0 {
		if len(frac) > digits {
			frac = frac[:digits]
		}
		frac += strings.Repeat("0", digits-len(frac))
		f, _ := strconv.ParseUint(frac, 10, 64)
		if f > ^uint64(0)-bits {
			return 0, fmt.Errorf("%w: %q is out of range", ErrBitrateParse, input)
		}
		bits += f
	}

	return Bitrate(bits), nil
}

func (b Bitrate) Bits() uint64 {
	return uint64(b)
}

// String formats the rate in the largest unit that keeps the number at or
// above one, eg. 54500 is "54.5 kb/s".
func (b Bitrate) String() string {
	bits := uint64(b)
	for _, u := range bitrateUnits {
		power := pow10(u.digits)
		if bits < power && u.digits > 0 {
			continue
		}

		whole := bits / power
		rem := bits % power
		if rem == 0 {
			return fmt.Sprintf("%d %s/s", whole, u.suffix)
		}
		frac := strings.TrimRight(fmt.Sprintf("%0*d", u.digits, rem), "0")
		return fmt.Sprintf("%d.%s %s/s", whole, frac, u.suffix)
	}
	return "0 b/s"
}

func (b Bitrate) Compare(other Bitrate) int {
	switch {
	case b < other:
		return -1
	case b > other:
		return 1
	}
	return 0
}

func (b Bitrate) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bitrate) UnmarshalText(text []byte) error {
	parsed, err := ParseBitrate(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// SortBitrates orders rates slowest first, in place.
func SortBitrates(rates []Bitrate) {
	sort.Slice(rates, func(i, j int) bool { return rates[i] < rates[j] })
}

// MaxBitrate returns the fastest rate, or 0 for an empty list.
func MaxBitrate(rates []Bitrate) Bitrate {
	var fastest Bitrate
	for _, r := range rates {
		if r > fastest {
			fastest = r
		}
	}
	return fastest
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
