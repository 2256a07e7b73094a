// SPDX-License-Identifier: MIT

package routing

import (
	"fmt"
	"strconv"
)

// Metric selects which cost matrix a search reads. The zero Metric is invalid.
type Metric uint8

const (
	// MetricTime searches the time matrix.
	MetricTime Metric = iota + 1
	// MetricMoney searches the money matrix.
	MetricMoney
)

// String returns "time", "money" or "invalid".
func (m Metric) String() string {
	switch m {
	case MetricTime:
		return "time"
	case MetricMoney:
		return "money"
	default:
		return "invalid"
	}
}

// Valid reports whether m is MetricTime or MetricMoney.
func (m Metric) Valid() bool { return m == MetricTime || m == MetricMoney }

// ParseMetric parses "time" or "money".
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "time":
		return MetricTime, nil
	case "money":
		return MetricMoney, nil
	default:
		return 0, fmt.Errorf("ParseMetric(%q): %w", s, ErrInvalidMetric)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("Metric.MarshalText(%d): %w", m, ErrInvalidMetric)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Category is the package service class of a route request.
type Category int

const (
	// CategoryStandard routes for the lowest money cost.
	CategoryStandard Category = 0
	// CategoryExpress routes for the lowest time.
	CategoryExpress Category = 1
)

// Metric maps the category onto the metric it optimizes.
func (c Category) Metric() (Metric, error) {
	switch c {
	case CategoryStandard:
		return MetricMoney, nil
	case CategoryExpress:
		return MetricTime, nil
	default:
		return 0, fmt.Errorf("Category(%d): %w", int(c), ErrInvalidMetric)
	}
}

// String returns "standard", "express" or the number for unknown values.
func (c Category) String() string {
	switch c {
	case CategoryStandard:
		return "standard"
	case CategoryExpress:
		return "express"
	default:
		return strconv.Itoa(int(c))
	}
}

// ParseCategory accepts "0"/"standard" and "1"/"express".
func ParseCategory(s string) (Category, error) {
	switch s {
	case "0", "standard":
		return CategoryStandard, nil
	case "1", "express":
		return CategoryExpress, nil
	default:
		return 0, fmt.Errorf("ParseCategory(%q): %w", s, ErrInvalidMetric)
	}
}
