package repository

import (
	"context"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/infrastructure/sharding"
)

// PlaceRepository defines airport catalog operations. The catalog is
// replicated on both shards; reads name a shard anyway so every query
// in the system goes through the same explicit routing.
type PlaceRepository interface {
	ListCodes(ctx context.Context, shard sharding.ShardID) ([]string, error)
	GetByCode(ctx context.Context, shard sharding.ShardID, code string) (*entity.Place, error)
	// Upsert writes the place on the given shard; the seed command
	// calls it once per shard to keep the replicas identical.
	Upsert(ctx context.Context, shard sharding.ShardID, place *entity.Place) error
}
