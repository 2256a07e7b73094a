// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"strconv"
)

// Kind tags a NodeID as a hub center or a regional station.
// The zero Kind is invalid so that a zero NodeID never names a node.
type Kind uint8

const (
	KindCenter  Kind = iota + 1 // hub node, "c<ordinal>"
	KindStation                 // leaf node, "s<ordinal>"
)

const (
	centerPrefix  = 'c'
	stationPrefix = 's'
)

// String returns "center", "station" or "invalid".
func (k Kind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindStation:
		return "station"
	default:
		return "invalid"
	}
}

// NodeID identifies a physical node: Center(ordinal) or Station(ordinal),
// both zero-based. NodeID is comparable and usable as a map key.
type NodeID struct {
	Kind    Kind
	Ordinal uint32
}

// Center returns the id of the i-th center.
func Center(i uint32) NodeID { return NodeID{Kind: KindCenter, Ordinal: i} }

// Station returns the id of the i-th station.
func Station(i uint32) NodeID { return NodeID{Kind: KindStation, Ordinal: i} }

// IsCenter reports whether id names a center.
func (id NodeID) IsCenter() bool { return id.Kind == KindCenter }

// IsStation reports whether id names a station.
func (id NodeID) IsStation() bool { return id.Kind == KindStation }

// Valid reports whether id carries a known Kind. It does not check the
// ordinal against any layout; see Layout.Contains.
func (id NodeID) Valid() bool { return id.Kind == KindCenter || id.Kind == KindStation }

// String renders id as "c<ordinal>" or "s<ordinal>".
func (id NodeID) String() string {
	switch id.Kind {
	case KindCenter:
		return string(centerPrefix) + strconv.FormatUint(uint64(id.Ordinal), 10)
	case KindStation:
		return string(stationPrefix) + strconv.FormatUint(uint64(id.Ordinal), 10)
	default:
		return "invalid"
	}
}

// ParseNodeID parses the canonical "c<digits>" / "s<digits>" form (no
// leading zeros). Anything else fails with ErrInvalidNodeReference.
func ParseNodeID(s string) (NodeID, error) {
	if len(s) < 2 {
		return NodeID{}, fmt.Errorf("ParseNodeID(%q): %w", s, ErrInvalidNodeReference)
	}

	var kind Kind
	switch s[0] {
	case centerPrefix:
		kind = KindCenter
	case stationPrefix:
		kind = KindStation
	default:
		return NodeID{}, fmt.Errorf("ParseNodeID(%q): unknown prefix: %w", s, ErrInvalidNodeReference)
	}

	digits := s[1:]
	if len(digits) > 1 && digits[0] == '0' {
		return NodeID{}, fmt.Errorf("ParseNodeID(%q): leading zero: %w", s, ErrInvalidNodeReference)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return NodeID{}, fmt.Errorf("ParseNodeID(%q): %w", s, ErrInvalidNodeReference)
		}
	}
	ord, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return NodeID{}, fmt.Errorf("ParseNodeID(%q): %v: %w", s, err, ErrInvalidNodeReference)
	}

	return NodeID{Kind: kind, Ordinal: uint32(ord)}, nil
}

// MustParseNodeID is ParseNodeID for literals known to be valid; it panics otherwise.
func MustParseNodeID(s string) NodeID {
	id, err := ParseNodeID(s)
	if err != nil {
		panic(err)
	}

	return id
}

// MarshalText implements encoding.TextMarshaler.
func (id NodeID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("MarshalText: kind %d: %w", id.Kind, ErrInvalidNodeReference)
	}

	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeID(string(text))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}
