package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per snapshot key.
type MongoStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongoStore creates a store on the given database and collection.
func NewMongoStore(client *mongo.Client, dbName, collectionName string) *MongoStore {
	return &MongoStore{
		collection: client.Database(dbName).Collection(collectionName),
		timeout:    2 * time.Second,
	}
}

type snapshotDoc struct {
	Data string `bson:"data"`
}

// Save inserts or replaces the snapshot stored under key.
func (m *MongoStore) Save(ctx context.Context, key string, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	filter := bson.M{"_id": key}
	update := bson.M{
		"$set": bson.M{
			"data":      string(data),
			"rings":     snap.Rings,
			"tick":      snap.Tick,
			"updatedAt": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("save snapshot %s: %w", key, err)
	}
	return nil
}

// Load reads the snapshot stored under key.
func (m *MongoStore) Load(ctx context.Context, key string) (Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var doc snapshotDoc
	if err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, key)
		}
		return Snapshot{}, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	return Decode([]byte(doc.Data))
}
