package station_test

import (
	"fmt"
	"testing"

	"laundry/internal/core/domain/model/station"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStation_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(station.Unknown))
		assert.Equal(t, 1, int(station.Washing))
		assert.Equal(t, 2, int(station.Ironing))
		assert.Equal(t, 3, int(station.Packing))
	})
}

func TestStation_Validate(t *testing.T) {
	t.Run("should validate valid stations", func(t *testing.T) {
		validStations := []station.Station{
			station.Washing,
			station.Ironing,
			station.Packing,
		}

		for _, st := range validStations {
			t.Run(fmt.Sprintf("should validate %s station", st.String()), func(t *testing.T) {
				require.NoError(t, st.Validate())
			})
		}
	})

	t.Run("should reject Unknown station", func(t *testing.T) {
		err := station.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "station is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid station")
	})

	t.Run("should reject invalid station values", func(t *testing.T) {
		invalidStations := []station.Station{
			station.Station(-1),
			station.Station(4),
			station.Station(100),
		}

		for _, st := range invalidStations {
			err := st.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid station", int(st)))
		}
	})
}

func TestStation_String(t *testing.T) {
	t.Run("should return canonical name for valid stations", func(t *testing.T) {
		testCases := []struct {
			station  station.Station
			expected string
		}{
			{station.Washing, "WASHING"},
			{station.Ironing, "IRONING"},
			{station.Packing, "PACKING"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.station.String())
		}
	})

	t.Run("should return UNKNOWN for invalid stations", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", station.Unknown.String())
		assert.Equal(t, "UNKNOWN", station.Station(42).String())
	})
}

func TestStation_QueryValue(t *testing.T) {
	t.Run("should return lowercase routing form", func(t *testing.T) {
		assert.Equal(t, "washing", station.Washing.QueryValue())
		assert.Equal(t, "ironing", station.Ironing.QueryValue())
		assert.Equal(t, "packing", station.Packing.QueryValue())
	})
}

func TestParseStation(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		st, err := station.ParseStation("WASHING")

		require.NoError(t, err)
		assert.Equal(t, station.Washing, st)
	})

	t.Run("should parse query value form", func(t *testing.T) {
		st, err := station.ParseStation("packing")

		require.NoError(t, err)
		assert.Equal(t, station.Packing, st)
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		st, err := station.ParseStation("  ironing ")

		require.NoError(t, err)
		assert.Equal(t, station.Ironing, st)
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		testCases := []string{"", "drying", "WASH", "unknown"}

		for _, value := range testCases {
			st, err := station.ParseStation(value)

			require.Error(t, err, "expected error for input: %q", value)
			assert.Equal(t, station.Unknown, st)
			assert.Contains(t, err.Error(), "station is invalid")
		}
	})
}
