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

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	shards *persistence.ShardSet
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(shards *persistence.ShardSet) repository.FlightRepository {
	return &GormFlightRepository{
		shards: shards,
	}
}

// Flights GORM model for database mapping. Fares are nullable; not
// every flight sells business or first class.
type Flights struct {
	ID            uint      `gorm:"primaryKey"`
	OriginID      uint      `gorm:"column:origin_id;index"`
	DestinationID uint      `gorm:"column:destination_id;index"`
	DepartTime    string    `gorm:"column:depart_time;type:time"`
	Duration      string    `gorm:"column:duration;type:time"`
	ArrivalTime   string    `gorm:"column:arrival_time;type:time"`
	FlightNo      string    `gorm:"column:flight_no;size:24"`
	Airline       string    `gorm:"column:airline;size:64"`
	EconomyFare   *float64  `gorm:"column:economy_fare"`
	BusinessFare  *float64  `gorm:"column:business_fare"`
	FirstFare     *float64  `gorm:"column:first_fare"`
	DepartureDate time.Time `gorm:"column:departure_date;type:date;index"`
	Origin        Places    `gorm:"foreignKey:OriginID"`
	Destination   Places    `gorm:"foreignKey:DestinationID"`
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flight"
}

func (f Flights) toEntity() *entity.Flight {
	return &entity.Flight{
		ID:            f.ID,
		OriginID:      f.OriginID,
		DestinationID: f.DestinationID,
		DepartTime:    f.DepartTime,
		Duration:      f.Duration,
		ArrivalTime:   f.ArrivalTime,
		FlightNo:      f.FlightNo,
		Airline:       f.Airline,
		EconomyFare:   f.EconomyFare,
		BusinessFare:  f.BusinessFare,
		FirstFare:     f.FirstFare,
		DepartureDate: f.DepartureDate,
	}
}

// flightRow is the scan target for the search join.
type flightRow struct {
	ID              uint      `gorm:"column:id"`
	OriginID        uint      `gorm:"column:origin_id"`
	DestinationID   uint      `gorm:"column:destination_id"`
	DepartTime      string    `gorm:"column:depart_time"`
	Duration        string    `gorm:"column:duration"`
	ArrivalTime     string    `gorm:"column:arrival_time"`
	FlightNo        string    `gorm:"column:flight_no"`
	Airline         string    `gorm:"column:airline"`
	EconomyFare     *float64  `gorm:"column:economy_fare"`
	BusinessFare    *float64  `gorm:"column:business_fare"`
	FirstFare       *float64  `gorm:"column:first_fare"`
	DepartureDate   time.Time `gorm:"column:departure_date"`
	OriginCode      string    `gorm:"column:origin_code"`
	OriginCity      string    `gorm:"column:origin_city"`
	DestinationCode string    `gorm:"column:destination_code"`
	DestinationCity string    `gorm:"column:destination_city"`
}

// Search returns flights matching origin code, destination code and
// the exact departure date. Time of day never participates in the
// match; departure_date is a date column.
func (r *GormFlightRepository) Search(ctx context.Context, shard sharding.ShardID, criteria repository.FlightSearch) ([]entity.FlightDetail, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var rows []flightRow
	result := db.WithContext(ctx).
		Table("flight").
		Select("flight.*, origin.code AS origin_code, origin.city AS origin_city, destination.code AS destination_code, destination.city AS destination_city").
		Joins("JOIN place AS origin ON flight.origin_id = origin.id").
		Joins("JOIN place AS destination ON flight.destination_id = destination.id").
		Where("origin.code = ? AND destination.code = ? AND flight.departure_date = ?",
			criteria.OriginCode, criteria.DestinationCode, criteria.DepartureDate.Format("2006-01-02")).
		Order("flight.depart_time").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("search flights on %s: %w", shard, result.Error)
	}

	details := make([]entity.FlightDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, entity.FlightDetail{
			Flight: entity.Flight{
				ID:            row.ID,
				OriginID:      row.OriginID,
				DestinationID: row.DestinationID,
				DepartTime:    row.DepartTime,
				Duration:      row.Duration,
				ArrivalTime:   row.ArrivalTime,
				FlightNo:      row.FlightNo,
				Airline:       row.Airline,
				EconomyFare:   row.EconomyFare,
				BusinessFare:  row.BusinessFare,
				FirstFare:     row.FirstFare,
				DepartureDate: row.DepartureDate,
			},
			OriginCode:      row.OriginCode,
			OriginCity:      row.OriginCity,
			DestinationCode: row.DestinationCode,
			DestinationCity: row.DestinationCity,
		})
	}
	return details, nil
}

// GetByID finds a flight by id on the given shard
func (r *GormFlightRepository) GetByID(ctx context.Context, shard sharding.ShardID, id uint) (*entity.Flight, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var flight Flights
	result := db.WithContext(ctx).First(&flight, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("flight %d on %s: %w", id, shard, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get flight on %s: %w", shard, result.Error)
	}

	return flight.toEntity(), nil
}

// Create inserts a flight on the given shard. Used by the seed
// command, once per shard, to keep the replicated catalog identical.
func (r *GormFlightRepository) Create(ctx context.Context, shard sharding.ShardID, flight *entity.Flight) error {
	db, err := r.shards.For(shard)
	if err != nil {
		return err
	}

	row := Flights{
		OriginID:      flight.OriginID,
		DestinationID: flight.DestinationID,
		DepartTime:    flight.DepartTime,
		Duration:      flight.Duration,
		ArrivalTime:   flight.ArrivalTime,
		FlightNo:      flight.FlightNo,
		Airline:       flight.Airline,
		EconomyFare:   flight.EconomyFare,
		BusinessFare:  flight.BusinessFare,
		FirstFare:     flight.FirstFare,
		DepartureDate: flight.DepartureDate,
	}

	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create flight on %s: %w", shard, err)
	}

	flight.ID = row.ID
	return nil
}
