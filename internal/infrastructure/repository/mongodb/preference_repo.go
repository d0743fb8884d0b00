package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PreferenceRepository stores preference blobs as {_id: key, value} documents.
type PreferenceRepository struct {
	collection *mongo.Collection
}

var _ contract.IKeyValueStore = (*PreferenceRepository)(nil)

func NewPreferenceRepository(db *mongo.Database) *PreferenceRepository {
	return &PreferenceRepository{
		collection: db.Collection("preferences"),
	}
}

type preferenceDoc struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var doc preferenceDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read preference: %w", err)
	}
	return doc.Value, true, nil
}

// Set upserts the value under key.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	update := bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}
