package repository

import (
	"context"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/infrastructure/sharding"
)

// UserRepository defines user operations. Every method takes the
// ShardID resolved by the caller; a lookup on the wrong shard returns
// not-found, it never falls back to the other shard.
type UserRepository interface {
	GetByUsername(ctx context.Context, shard sharding.ShardID, username string) (*entity.User, error)
	GetByID(ctx context.Context, shard sharding.ShardID, id uint) (*entity.User, error)
	Create(ctx context.Context, shard sharding.ShardID, user *entity.User) error
}
