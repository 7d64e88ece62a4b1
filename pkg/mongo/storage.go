package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// document is the stored shape of one session.
type document struct {
	Key    string    `bson:"_id"`
	Data   string    `bson:"data"`
	Expiry time.Time `bson:"expiry"`
}

// Storage keeps sessions as documents keyed by the session key. Expired
// documents are removed by a TTL index on "expiry"; until the TTL monitor
// runs, Fetch filters them out itself.
type Storage struct {
	coll    *mongo.Collection
	nowFunc func() time.Time
}

// StorageOption configures Storage.
type StorageOption func(*Storage)

// WithClock sets the clock used to compute and compare expiry times.
func WithClock(now func() time.Time) StorageOption {
	return func(s *Storage) {
		if now != nil {
			s.nowFunc = now
		}
	}
}

// NewStorage wraps a collection. Call EnsureIndexes once at startup.
func NewStorage(coll *mongo.Collection, opts ...StorageOption) *Storage {
	s := &Storage{coll: coll, nowFunc: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureIndexes creates the TTL index on "expiry". It is idempotent.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiry", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return errors.Join(ErrCreateIndex, err)
	}
	return nil
}

// Fetch returns nil when no live document exists for key.
func (s *Storage) Fetch(ctx context.Context, key string) ([]byte, error) {
	var doc document
	err := s.coll.FindOne(ctx, fetchFilter(key, s.nowFunc())).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStorageFetch, err)
	}
	return []byte(doc.Data), nil
}

// Persist upserts the document for key with a fresh expiry.
func (s *Storage) Persist(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	doc := newDocument(key, value, s.nowFunc().Add(ttl))
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Join(ErrStoragePersist, err)
	}
	return nil
}

// Delete removes the document for key. A missing document is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errors.Join(ErrStorageDelete, err)
	}
	return nil
}

func fetchFilter(key string, now time.Time) bson.M {
	return bson.M{
		"_id":    key,
		"expiry": bson.M{"$gt": now.UTC()},
	}
}

// newDocument truncates the expiry to milliseconds, the precision of a BSON date.
func newDocument(key string, value []byte, expiry time.Time) document {
	return document{
		Key:    key,
		Data:   string(value),
		Expiry: expiry.UTC().Truncate(time.Millisecond),
	}
}
