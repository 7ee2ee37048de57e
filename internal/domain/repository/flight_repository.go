package repository

import (
	"context"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/infrastructure/sharding"
)

// FlightSearch is the criteria for a flight search: origin and
// destination airport codes plus the exact departure date (date
// component only, time of day is ignored).
type FlightSearch struct {
	OriginCode      string
	DestinationCode string
	DepartureDate   time.Time
}

// FlightRepository defines flight catalog operations.
type FlightRepository interface {
	Search(ctx context.Context, shard sharding.ShardID, criteria FlightSearch) ([]entity.FlightDetail, error)
	GetByID(ctx context.Context, shard sharding.ShardID, id uint) (*entity.Flight, error)
	Create(ctx context.Context, shard sharding.ShardID, flight *entity.Flight) error
}
