package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/internal/infrastructure/persistence"
	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"

	"gorm.io/gorm"
)

// GormBookingRepository implements the BookingRepository interface.
// Every statement runs on the shard the caller resolved; there is no
// fallback to the other shard under any condition.
type GormBookingRepository struct {
	shards *persistence.ShardSet
}

// NewGormBookingRepository creates a new GORM booking repository
func NewGormBookingRepository(shards *persistence.ShardSet) repository.BookingRepository {
	return &GormBookingRepository{
		shards: shards,
	}
}

// UserBookings GORM model for database mapping
type UserBookings struct {
	BookingID     uint      `gorm:"column:booking_id;primaryKey"`
	UserID        uint      `gorm:"column:user_id;index;not null"`
	FlightID      uint      `gorm:"column:flight_id;not null"`
	PassengerName string    `gorm:"column:passenger_name;size:100;not null"`
	FamilyName    string    `gorm:"column:family_name;size:100;not null"`
	Gender        string    `gorm:"column:gender;size:6;not null"`
	DOB           time.Time `gorm:"column:dob;type:date;not null"`
	Status        string    `gorm:"column:status;size:8;not null;default:booked"`
	User          Users     `gorm:"foreignKey:UserID"`
	Flight        Flights   `gorm:"foreignKey:FlightID"`
}

// TableName overrides the default table name
func (UserBookings) TableName() string {
	return "user_booking"
}

// bookingRow is the scan target for the list/detail join.
type bookingRow struct {
	BookingID       uint      `gorm:"column:booking_id"`
	UserID          uint      `gorm:"column:user_id"`
	FlightID        uint      `gorm:"column:flight_id"`
	PassengerName   string    `gorm:"column:passenger_name"`
	FamilyName      string    `gorm:"column:family_name"`
	Gender          string    `gorm:"column:gender"`
	DOB             time.Time `gorm:"column:dob"`
	Status          string    `gorm:"column:status"`
	FlightNo        string    `gorm:"column:flight_no"`
	Airline         string    `gorm:"column:airline"`
	DepartTime      string    `gorm:"column:depart_time"`
	DepartureDate   time.Time `gorm:"column:departure_date"`
	OriginCity      string    `gorm:"column:origin_city"`
	DestinationCity string    `gorm:"column:destination_city"`
}

func (b bookingRow) toDetail() entity.BookingDetail {
	return entity.BookingDetail{
		Booking: entity.Booking{
			BookingID:     b.BookingID,
			UserID:        b.UserID,
			FlightID:      b.FlightID,
			PassengerName: b.PassengerName,
			FamilyName:    b.FamilyName,
			Gender:        b.Gender,
			DOB:           b.DOB,
			Status:        b.Status,
		},
		FlightNo:        b.FlightNo,
		Airline:         b.Airline,
		DepartTime:      b.DepartTime,
		DepartureDate:   b.DepartureDate,
		OriginCity:      b.OriginCity,
		DestinationCity: b.DestinationCity,
	}
}

func (r *GormBookingRepository) detailQuery(db *gorm.DB) *gorm.DB {
	return db.Table("user_booking").
		Select("user_booking.*, flight.flight_no, flight.airline, flight.depart_time, flight.departure_date, origin.city AS origin_city, destination.city AS destination_city").
		Joins("JOIN flight ON user_booking.flight_id = flight.id").
		Joins("JOIN place AS origin ON flight.origin_id = origin.id").
		Joins("JOIN place AS destination ON flight.destination_id = destination.id")
}

// Create inserts the booking on the given shard in one transaction.
func (r *GormBookingRepository) Create(ctx context.Context, shard sharding.ShardID, booking *entity.Booking) error {
	db, err := r.shards.For(shard)
	if err != nil {
		return err
	}

	row := UserBookings{
		UserID:        booking.UserID,
		FlightID:      booking.FlightID,
		PassengerName: booking.PassengerName,
		FamilyName:    booking.FamilyName,
		Gender:        booking.Gender,
		DOB:           booking.DOB,
		Status:        entity.BookingStatusBooked,
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("create booking on %s: %w: %v", shard, apperrors.ErrTransaction, err)
	}

	booking.BookingID = row.BookingID
	booking.Status = row.Status
	return nil
}

// ListByUser returns the user's live bookings with flight and city
// details. Canceled rows are retained in the table but not listed.
func (r *GormBookingRepository) ListByUser(ctx context.Context, shard sharding.ShardID, userID uint) ([]entity.BookingDetail, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var rows []bookingRow
	result := r.detailQuery(db.WithContext(ctx)).
		Where("user_booking.user_id = ? AND user_booking.status = ?", userID, entity.BookingStatusBooked).
		Order("user_booking.booking_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("list bookings on %s: %w", shard, result.Error)
	}

	details := make([]entity.BookingDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, row.toDetail())
	}
	return details, nil
}

// GetByID returns one booking. The user id participates in the WHERE
// clause, so another user's booking reads as not found rather than
// forbidden.
func (r *GormBookingRepository) GetByID(ctx context.Context, shard sharding.ShardID, bookingID, userID uint) (*entity.BookingDetail, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var rows []bookingRow
	result := r.detailQuery(db.WithContext(ctx)).
		Where("user_booking.booking_id = ? AND user_booking.user_id = ?", bookingID, userID).
		Limit(1).
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("get booking on %s: %w", shard, result.Error)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("booking %d on %s: %w", bookingID, shard, apperrors.ErrNotFound)
	}

	detail := rows[0].toDetail()
	return &detail, nil
}

// UpdatePassenger changes passenger_name/family_name for a booking
// owned by userID. Zero rows affected means the booking does not
// exist on this shard or belongs to someone else.
func (r *GormBookingRepository) UpdatePassenger(ctx context.Context, shard sharding.ShardID, bookingID, userID uint, passengerName, familyName string) error {
	db, err := r.shards.For(shard)
	if err != nil {
		return err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&UserBookings{}).
			Where("booking_id = ? AND user_id = ?", bookingID, userID).
			Updates(map[string]interface{}{
				"passenger_name": passengerName,
				"family_name":    familyName,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("booking %d on %s: %w", bookingID, shard, apperrors.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update booking on %s: %w: %v", shard, apperrors.ErrTransaction, err)
	}
	return nil
}

// Cancel flips the booking status to canceled. Soft delete: the row
// stays so booking history survives cancellation.
func (r *GormBookingRepository) Cancel(ctx context.Context, shard sharding.ShardID, bookingID, userID uint) error {
	db, err := r.shards.For(shard)
	if err != nil {
		return err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&UserBookings{}).
			Where("booking_id = ? AND user_id = ? AND status = ?", bookingID, userID, entity.BookingStatusBooked).
			Update("status", entity.BookingStatusCanceled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("booking %d on %s: %w", bookingID, shard, apperrors.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("cancel booking on %s: %w: %v", shard, apperrors.ErrTransaction, err)
	}
	return nil
}
