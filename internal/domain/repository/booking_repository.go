package repository

import (
	"context"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/infrastructure/sharding"
)

// BookingRepository defines booking lifecycle operations. Bookings
// exist only on the owning user's home shard. Update and Cancel
// filter by both booking id and user id so a guessed id belonging to
// another user affects zero rows.
type BookingRepository interface {
	Create(ctx context.Context, shard sharding.ShardID, booking *entity.Booking) error
	ListByUser(ctx context.Context, shard sharding.ShardID, userID uint) ([]entity.BookingDetail, error)
	GetByID(ctx context.Context, shard sharding.ShardID, bookingID, userID uint) (*entity.BookingDetail, error)
	UpdatePassenger(ctx context.Context, shard sharding.ShardID, bookingID, userID uint, passengerName, familyName string) error
	Cancel(ctx context.Context, shard sharding.ShardID, bookingID, userID uint) error
}
