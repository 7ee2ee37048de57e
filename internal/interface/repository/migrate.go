package repository

import (
	"fmt"

	"offbeat-travels/internal/infrastructure/persistence"
	"offbeat-travels/internal/infrastructure/sharding"
)

// AutoMigrate creates or updates the four relational tables on every
// shard. The schema is identical on both shards; place and flight
// hold replicated data, users and user_booking hold the partitioned
// data.
func AutoMigrate(shards *persistence.ShardSet) error {
	for i := 0; i < sharding.Count; i++ {
		shard := sharding.ShardID(i)
		db, err := shards.For(shard)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(&Places{}, &Users{}, &Flights{}, &UserBookings{}); err != nil {
			return fmt.Errorf("migrate %s: %w", shard, err)
		}
	}
	return nil
}
