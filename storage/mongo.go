package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is a Store backend keeping one document per key in a single
// collection, shaped as {key, value}.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type kvDocument struct {
	Key   string `bson:"key"`
	Value []byte `bson:"value"`
}

// NewMongoStore connects to MongoDB and returns a store over the
// "kv_entries" collection of the "gobeauty" database.
func NewMongoStore(uri string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database("gobeauty").Collection("kv_entries"),
	}, nil
}

func (m *MongoStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := m.coll.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return doc.Value, nil
}

func (m *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.coll.ReplaceOne(ctx,
		bson.M{"key": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (m *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"key": key}); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
