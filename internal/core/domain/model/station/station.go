// Package station provides the Station value object identifying one stage of
// physical laundry processing. Every work process on an order belongs to
// exactly one station, and station identity drives the per-station workflow
// state derivation in the order package.
package station

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Station represents one stage of physical laundry processing.
// An order passes through stations independently: each station keeps its own
// work process records, and the workflow state is derived per station.
//
// Station is a value object that validates its members and provides string
// representations for persistence, routing query values, and display.
type Station int

const (
	// Unknown represents an invalid or undefined station.
	// This value (0) helps catch uninitialized Station values.
	Unknown Station = iota

	// Washing is the station where laundry is washed.
	Washing

	// Ironing is the station where laundry is ironed.
	Ironing

	// Packing is the station where laundry is packed for pickup or delivery.
	Packing
)

// getStationStrings returns a map of Station values to their string representations.
// All stations are included for string conversion.
func getStationStrings() map[Station]string {
	return map[Station]string{
		Unknown: "UNKNOWN",
		Washing: "WASHING",
		Ironing: "IRONING",
		Packing: "PACKING",
	}
}

// getValidStationStrings returns a map of only valid Station values.
// Only valid stations are included to support validation.
func getValidStationStrings() map[Station]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Station]string{
		Washing: "WASHING",
		Ironing: "IRONING",
		Packing: "PACKING",
	}
}

// Validate checks if the Station value is valid.
//
// Valid stations are: Washing, Ironing, Packing.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the station is valid
//   - error with details if the station is invalid
func (s Station) Validate() error {
	if _, ok := getValidStationStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("station is invalid", fmt.Errorf("%d is not a valid station", s))
	}
	return nil
}

// String returns the canonical name of the station.
//
// Returns:
//   - "WASHING", "IRONING", or "PACKING" for valid stations
//   - "UNKNOWN" for invalid station values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Station value, including invalid ones.
func (s Station) String() string {
	if str, ok := getStationStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// AllStations returns the valid stations in workflow order:
// Washing, Ironing, Packing.
func AllStations() []Station {
	return []Station{Washing, Ironing, Packing}
}

// QueryValue returns the lowercase form used in routing query parameters
// and REST paths, e.g. "washing".
func (s Station) QueryValue() string {
	return strings.ToLower(s.String())
}

// ParseStation resolves a station from its string form.
// Both the canonical uppercase form ("WASHING") and the routing query value
// form ("washing") are accepted.
//
// Returns an error if the value does not name a valid station.
func ParseStation(value string) (Station, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for st, str := range getValidStationStrings() {
		if str == normalized {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"station is invalid",
		fmt.Errorf("%q is not a valid station", value),
	)
}
