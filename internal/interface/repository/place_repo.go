package repository

import (
	"context"
	"errors"
	"fmt"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/internal/infrastructure/persistence"
	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPlaceRepository implements the PlaceRepository interface
type GormPlaceRepository struct {
	shards *persistence.ShardSet
}

// NewGormPlaceRepository creates a new GORM place repository
func NewGormPlaceRepository(shards *persistence.ShardSet) repository.PlaceRepository {
	return &GormPlaceRepository{
		shards: shards,
	}
}

// Places GORM model for database mapping
type Places struct {
	ID      uint   `gorm:"primaryKey"`
	City    string `gorm:"column:city;size:64"`
	Airport string `gorm:"column:airport;size:64"`
	Code    string `gorm:"column:code;size:3;uniqueIndex"`
	Country string `gorm:"column:country;size:64"`
}

// TableName overrides the default table name
func (Places) TableName() string {
	return "place"
}

func (p Places) toEntity() *entity.Place {
	return &entity.Place{
		ID:      p.ID,
		City:    p.City,
		Airport: p.Airport,
		Code:    p.Code,
		Country: p.Country,
	}
}

// ListCodes returns all airport codes on the given shard
func (r *GormPlaceRepository) ListCodes(ctx context.Context, shard sharding.ShardID) ([]string, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var codes []string
	result := db.WithContext(ctx).Model(&Places{}).Order("code").Pluck("code", &codes)
	if result.Error != nil {
		return nil, fmt.Errorf("list codes on %s: %w", shard, result.Error)
	}
	return codes, nil
}

// GetByCode finds a place by airport code on the given shard
func (r *GormPlaceRepository) GetByCode(ctx context.Context, shard sharding.ShardID, code string) (*entity.Place, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var place Places
	result := db.WithContext(ctx).Where("code = ?", code).First(&place)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("place %q on %s: %w", code, shard, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get place on %s: %w", shard, result.Error)
	}

	return place.toEntity(), nil
}

// Upsert inserts or refreshes the place keyed by code. The seed
// command calls this once per shard so both replicas stay identical.
func (r *GormPlaceRepository) Upsert(ctx context.Context, shard sharding.ShardID, place *entity.Place) error {
	db, err := r.shards.For(shard)
	if err != nil {
		return err
	}

	row := Places{
		City:    place.City,
		Airport: place.Airport,
		Code:    place.Code,
		Country: place.Country,
	}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"city", "airport", "country"}),
	}).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("upsert place %q on %s: %w", place.Code, shard, result.Error)
	}

	place.ID = row.ID
	return nil
}
