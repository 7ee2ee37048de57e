package persistence

import (
	"fmt"

	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ShardSet holds one gorm connection pool per relational shard,
// opened at process start. Requests borrow a pooled connection for
// the duration of one logical operation; gorm's Transaction wrapper
// guarantees release and rollback on every exit path.
type ShardSet struct {
	dbs [sharding.Count]*gorm.DB
}

// NewShardSet opens both shards. DSN order must match shard ids:
// dsns[0] backs Shard0, dsns[1] backs Shard1.
func NewShardSet(dsns [sharding.Count]string) (*ShardSet, error) {
	set := &ShardSet{}
	for i, dsn := range dsns {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger(),
		})
		if err != nil {
			return nil, fmt.Errorf("open %s: %w: %v", sharding.ShardID(i), apperrors.ErrShardUnavailable, err)
		}
		set.dbs[i] = db
	}
	return set, nil
}

func gormlogger() logger.Interface {
	// SQL goes to zap via the handlers; gorm's own logger only
	// reports real errors.
	return logger.Default.LogMode(logger.Error)
}

// For returns the connection pool backing the given shard.
func (s *ShardSet) For(shard sharding.ShardID) (*gorm.DB, error) {
	if !shard.Valid() || s.dbs[shard] == nil {
		return nil, fmt.Errorf("%s: %w", shard, apperrors.ErrShardUnavailable)
	}
	return s.dbs[shard], nil
}

// ForIdentity resolves the identity's home shard and returns its
// pool. Equivalent to For(sharding.Route(identity)).
func (s *ShardSet) ForIdentity(identity string) (*gorm.DB, error) {
	return s.For(sharding.Route(identity))
}

// Ping checks connectivity to one shard.
func (s *ShardSet) Ping(shard sharding.ShardID) error {
	db, err := s.For(shard)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%s: %w: %v", shard, apperrors.ErrShardUnavailable, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("%s: %w: %v", shard, apperrors.ErrShardUnavailable, err)
	}
	return nil
}

// Close releases both shard pools.
func (s *ShardSet) Close() error {
	for _, db := range s.dbs {
		if db == nil {
			continue
		}
		sqlDB, err := db.DB()
		if err != nil {
			continue
		}
		sqlDB.Close()
	}
	return nil
}
