package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStationQueueQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetStationQueueQuery(station.Ironing)
	require.NoError(t, err)
	assert.Equal(t, station.Ironing, query.Station())
	assert.NoError(t, query.Validate())
}

func TestNewGetStationQueueQuery_InvalidStation(t *testing.T) {
	_, err := queries.NewGetStationQueueQuery(station.Unknown)
	require.Error(t, err)
}

func TestNewGetPendingBypassRequestsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingBypassRequestsQuery()
	assert.NoError(t, query.Validate())
}

func TestGetPendingBypassRequestsQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetPendingBypassRequestsQuery
	assert.Error(t, query.Validate())
}
