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

// GormUserRepository implements the UserRepository interface over the
// shard set. The shard is always supplied by the caller.
type GormUserRepository struct {
	shards *persistence.ShardSet
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(shards *persistence.ShardSet) repository.UserRepository {
	return &GormUserRepository{
		shards: shards,
	}
}

// Users GORM model for database mapping. Username uniqueness is a
// shard-local constraint; there is no global index across shards.
type Users struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"column:username;size:500;uniqueIndex;not null"`
	Password  string `gorm:"column:password;type:text;not null"`
	HomeShard string `gorm:"column:home_shard;size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Users) TableName() string {
	return "users"
}

func (u Users) toEntity() *entity.User {
	return &entity.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.Password,
		HomeShard:    u.HomeShard,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// GetByUsername finds a user by username on the given shard
func (r *GormUserRepository) GetByUsername(ctx context.Context, shard sharding.ShardID, username string) (*entity.User, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var user Users
	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q on %s: %w", username, shard, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get user on %s: %w", shard, result.Error)
	}

	return user.toEntity(), nil
}

// GetByID finds a user by id on the given shard
func (r *GormUserRepository) GetByID(ctx context.Context, shard sharding.ShardID, id uint) (*entity.User, error) {
	db, err := r.shards.For(shard)
	if err != nil {
		return nil, err
	}

	var user Users
	result := db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d on %s: %w", id, shard, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get user on %s: %w", shard, result.Error)
	}

	return user.toEntity(), nil
}

// Create inserts the user on the given shard in one transaction. A
// duplicate username within the shard surfaces as ErrConflict.
func (r *GormUserRepository) Create(ctx context.Context, shard sharding.ShardID, user *entity.User) error {
	db, err := r.shards.For(shard)
	if err != nil {
		return err
	}

	row := Users{
		Username:  user.Username,
		Password:  user.PasswordHash,
		HomeShard: user.HomeShard,
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username %q on %s: %w", user.Username, shard, apperrors.ErrConflict)
		}
		return fmt.Errorf("create user on %s: %w: %v", shard, apperrors.ErrTransaction, err)
	}

	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	return nil
}
