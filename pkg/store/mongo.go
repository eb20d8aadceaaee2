package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/drawshop/pkg/errors"
)

// MongoConfig configures [NewMongoBackend].
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoBackend stores each document in its own MongoDB record keyed by the
// drawing identifier.
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoRecord struct {
	ID        string    `bson:"_id"`
	Doc       []byte    `bson:"doc"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoBackend connects to MongoDB and verifies the connection.
func NewMongoBackend(ctx context.Context, cfg MongoConfig) (*MongoBackend, error) {
	if cfg.Database == "" {
		cfg.Database = "drawshop"
	}
	if cfg.Collection == "" {
		cfg.Collection = "drawings"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	err = retry(ctx, connectAttempts, connectDelay, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return &transientError{err}
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoBackend{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (m *MongoBackend) Name() string { return "mongo" }

func (m *MongoBackend) Read(ctx context.Context, id string) ([]byte, error) {
	var rec mongoRecord
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "mongo find %s", id)
	}
	return rec.Doc, nil
}

// Write upserts the record, so a replace is a single atomic operation.
func (m *MongoBackend) Write(ctx context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	rec := mongoRecord{ID: id, Doc: data, UpdatedAt: time.Now().UTC()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": id}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return writeError(err, id)
	}
	return nil
}

// Insert relies on the unique _id index to reject a taken id.
func (m *MongoBackend) Insert(ctx context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	rec := mongoRecord{ID: id, Doc: data, UpdatedAt: time.Now().UTC()}
	if _, err := m.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return alreadyExists(id)
		}
		return writeError(err, id)
	}
	return nil
}

func (m *MongoBackend) Delete(ctx context.Context, id string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteError, err, "mongo delete %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (m *MongoBackend) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "mongo list")
	}
	var recs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "mongo list")
	}
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids, nil
}

func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
