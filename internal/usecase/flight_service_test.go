package usecase

import (
	"context"
	"testing"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() *fakeFlightRepo {
	mar1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mar2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	return &fakeFlightRepo{flights: []entity.FlightDetail{
		{
			Flight:     entity.Flight{ID: 1, FlightNo: "AI101", DepartureDate: mar1},
			OriginCode: "DEL", DestinationCode: "JFK",
		},
		{
			Flight:     entity.Flight{ID: 2, FlightNo: "AI102", DepartureDate: mar2},
			OriginCode: "DEL", DestinationCode: "JFK",
		},
		{
			Flight:     entity.Flight{ID: 3, FlightNo: "BA205", DepartureDate: mar1},
			OriginCode: "DEL", DestinationCode: "LHR",
		},
		{
			Flight:     entity.Flight{ID: 4, FlightNo: "UA90", DepartureDate: mar1},
			OriginCode: "BOM", DestinationCode: "JFK",
		},
	}}
}

func TestSearchMatchesExactCriteria(t *testing.T) {
	svc := NewFlightService(searchFixture(), &fakePlaceRepo{}, logger.NewNop(), nil)
	sess := sessionFor("alice", 1)

	results, err := svc.Search(context.Background(), sess, "DEL", "JFK", "2024-03-01")
	require.NoError(t, err)

	// Only the flight matching origin, destination and date; the
	// same route on another date and other routes on the same date
	// are excluded.
	require.Len(t, results, 1)
	assert.Equal(t, "AI101", results[0].FlightNo)
}

func TestSearchNoMatches(t *testing.T) {
	svc := NewFlightService(searchFixture(), &fakePlaceRepo{}, logger.NewNop(), nil)
	sess := sessionFor("alice", 1)

	results, err := svc.Search(context.Background(), sess, "JFK", "DEL", "2024-03-01")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchValidation(t *testing.T) {
	svc := NewFlightService(searchFixture(), &fakePlaceRepo{}, logger.NewNop(), nil)
	sess := sessionFor("alice", 1)
	ctx := context.Background()

	_, err := svc.Search(ctx, sess, "", "JFK", "2024-03-01")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Search(ctx, sess, "DEL", "", "2024-03-01")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Search(ctx, sess, "DEL", "JFK", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Search(ctx, sess, "DEL", "JFK", "01-03-2024")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetFlight(t *testing.T) {
	svc := NewFlightService(searchFixture(), &fakePlaceRepo{}, logger.NewNop(), nil)
	sess := sessionFor("alice", 1)

	flight, err := svc.GetFlight(context.Background(), sess, 3)
	require.NoError(t, err)
	assert.Equal(t, "BA205", flight.FlightNo)

	_, err = svc.GetFlight(context.Background(), sess, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListAirportCodes(t *testing.T) {
	places := &fakePlaceRepo{codes: []string{"BOM", "DEL", "JFK"}}
	svc := NewFlightService(searchFixture(), places, logger.NewNop(), nil)

	codes, err := svc.ListAirportCodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"BOM", "DEL", "JFK"}, codes)
}
