package key

import (
	"fmt"
	"strconv"
	"strings"
)

// LogicalKey identifies one physical key position after upstream mirroring.
// Valid values are 0..KeyCount-1 for the configured layout.
type LogicalKey uint8

// Half-board positions for the default ten-key layout.
// O0..O4 are the outer row (O4 is the outer thumb key), I0..I4 the inner
// row (I4 is the inner thumb key). O0/I0 sit under the index finger.
const (
	O0 LogicalKey = iota
	O1
	O2
	O3
	O4
	I0
	I1
	I2
	I3
	I4
)

// DefaultKeyCount is the number of logical keys in the default layout.
const DefaultKeyCount = 10

// MaxKeys is the largest supported logical key space. Chords are 32-bit
// masks, so a layout can define at most 32 keys.
const MaxKeys = 32

// String returns the configuration name for the key ("o0".."o4",
// "i0".."i4", or "k<N>" outside the default layout).
func (k LogicalKey) String() string {
	switch {
	case k <= O4:
		return "o" + strconv.Itoa(int(k))
	case k <= I4:
		return "i" + strconv.Itoa(int(k-I0))
	default:
		return "k" + strconv.Itoa(int(k))
	}
}

// ParseName parses a configuration key name. Accepted forms are "o0".."o4"
// and "i0".."i4" for the default layout, and "k<N>" for arbitrary logical
// indices.
func ParseName(s string) (LogicalKey, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) < 2 {
		return 0, fmt.Errorf("key: invalid key name %q", s)
	}

	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("key: invalid key name %q", s)
	}

	switch name[0] {
	case 'o':
		if n > 4 {
			return 0, fmt.Errorf("key: invalid key name %q", s)
		}
		return O0 + LogicalKey(n), nil
	case 'i':
		if n > 4 {
			return 0, fmt.Errorf("key: invalid key name %q", s)
		}
		return I0 + LogicalKey(n), nil
	case 'k':
		if n >= MaxKeys {
			return 0, fmt.Errorf("key: key index %d out of range", n)
		}
		return LogicalKey(n), nil
	default:
		return 0, fmt.Errorf("key: invalid key name %q", s)
	}
}
