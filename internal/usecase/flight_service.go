package usecase

import (
	"context"
	"fmt"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/internal/infrastructure/session"
	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"
	"offbeat-travels/pkg/metrics"
)

// FlightService serves the replicated flight and place catalogs.
// Searches run on the caller's home shard by convention; either
// shard would return the same rows.
type FlightService struct {
	flights repository.FlightRepository
	places  repository.PlaceRepository
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewFlightService creates a new flight service
func NewFlightService(
	flights repository.FlightRepository,
	places repository.PlaceRepository,
	log logger.Logger,
	m *metrics.Metrics,
) *FlightService {
	return &FlightService{
		flights: flights,
		places:  places,
		logger:  log,
		metrics: m,
	}
}

// Search finds flights by origin code, destination code and exact
// departure date (YYYY-MM-DD; time of day is ignored).
func (s *FlightService) Search(ctx context.Context, sess *session.Session, originCode, destinationCode, departureDate string) ([]entity.FlightDetail, error) {
	if originCode == "" || destinationCode == "" || departureDate == "" {
		return nil, fmt.Errorf("from, to and departure_date are required: %w", apperrors.ErrValidation)
	}
	date, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		return nil, fmt.Errorf("departure_date must be YYYY-MM-DD: %w", apperrors.ErrValidation)
	}

	s.metrics.ObserveShardOp(sess.Shard.String(), "search_flights")
	results, err := s.flights.Search(ctx, sess.Shard, repository.FlightSearch{
		OriginCode:      originCode,
		DestinationCode: destinationCode,
		DepartureDate:   date,
	})
	if err != nil {
		s.metrics.ObserveError("search_flights")
		return nil, err
	}

	s.logger.Info("Flight search", "username", sess.Username, "shard", sess.Shard.String(),
		"from", originCode, "to", destinationCode, "date", departureDate, "results", len(results))
	return results, nil
}

// GetFlight returns one flight from the caller's home shard.
func (s *FlightService) GetFlight(ctx context.Context, sess *session.Session, id uint) (*entity.Flight, error) {
	s.metrics.ObserveShardOp(sess.Shard.String(), "get_flight")
	return s.flights.GetByID(ctx, sess.Shard, id)
}

// ListAirportCodes returns every airport code in the catalog. The
// place table is replicated identically, so this pre-login read is
// pinned to Shard0.
func (s *FlightService) ListAirportCodes(ctx context.Context) ([]string, error) {
	return s.places.ListCodes(ctx, sharding.Shard0)
}
