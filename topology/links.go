// SPDX-License-Identifier: MIT

package topology

import "fmt"

// LinkClass is the transport mode of a link.
type LinkClass uint8

const (
	// Airline connects two centers; present for every center pair.
	Airline LinkClass = iota + 1
	// Highway connects a station to the center of its cluster.
	Highway
	// Road connects two stations closer than Config.RoadThreshold.
	Road
)

// linkClasses lists every valid class in emission order.
var linkClasses = [...]LinkClass{Airline, Highway, Road}

// String returns "airline", "highway", "road" or "invalid".
func (c LinkClass) String() string {
	switch c {
	case Airline:
		return "airline"
	case Highway:
		return "highway"
	case Road:
		return "road"
	default:
		return "invalid"
	}
}

// ParseLinkClass parses the String form of a class.
func ParseLinkClass(s string) (LinkClass, error) {
	for _, c := range linkClasses {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("ParseLinkClass(%q): %w", s, ErrInvalidConfig)
}

// MarshalText implements encoding.TextMarshaler.
func (c LinkClass) MarshalText() ([]byte, error) {
	if c < Airline || c > Road {
		return nil, fmt.Errorf("LinkClass.MarshalText(%d): %w", c, ErrInvalidConfig)
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LinkClass) UnmarshalText(text []byte) error {
	parsed, err := ParseLinkClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// Link is one direction of a physical connection. Every generated
// connection appears twice in Topology.Links, once per direction, with
// equal costs.
type Link struct {
	From     NodeID    `json:"src"`
	To       NodeID    `json:"dst"`
	Class    LinkClass `json:"type"`
	Distance float64   `json:"distance"`
	Time     float64   `json:"timeCost"`
	Money    float64   `json:"moneyCost"`
}
