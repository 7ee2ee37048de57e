package repository

import (
	"context"
	"fmt"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFAQRepository implements the FAQRepository interface
type MongoFAQRepository struct {
	collection *mongo.Collection
}

// NewMongoFAQRepository creates a new MongoDB FAQ repository
func NewMongoFAQRepository(db *mongo.Database) repository.FAQRepository {
	collection := db.Collection("faq")

	// Unique index on (category, question) so seeding is idempotent
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "question", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoFAQRepository{
		collection: collection,
	}
}

// ListAll returns every FAQ document, ordered by category
func (r *MongoFAQRepository) ListAll(ctx context.Context) ([]entity.FAQ, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list faq: %w", err)
	}
	defer cursor.Close(ctx)

	var faqs []entity.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, fmt.Errorf("decode faq: %w", err)
	}
	return faqs, nil
}

// Upsert creates or refreshes an FAQ document keyed by (category, question)
func (r *MongoFAQRepository) Upsert(ctx context.Context, faq *entity.FAQ) error {
	if faq.Timestamp.IsZero() {
		faq.Timestamp = time.Now()
	}

	filter := bson.M{"category": faq.Category, "question": faq.Question}
	update := bson.M{"$set": bson.M{
		"category":  faq.Category,
		"question":  faq.Question,
		"answer":    faq.Answer,
		"user_id":   faq.UserID,
		"timestamp": faq.Timestamp,
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("upsert faq: %w", err)
	}
	return nil
}
