package repository

import (
	"context"
	"fmt"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoContactMessageRepository implements ContactMessageRepository.
// The messages collection is append-only; nothing in the application
// reads it back.
type MongoContactMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoContactMessageRepository creates a new contact message repository
func NewMongoContactMessageRepository(db *mongo.Database) repository.ContactMessageRepository {
	return &MongoContactMessageRepository{
		collection: db.Collection("messages"),
	}
}

// Insert appends a contact message document
func (r *MongoContactMessageRepository) Insert(ctx context.Context, msg *entity.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
