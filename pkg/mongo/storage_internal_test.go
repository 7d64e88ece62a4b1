package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestFetchFilter(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	filter := fetchFilter("session:abc", now)

	assert.Equal(t, "session:abc", filter["_id"])
	assert.Equal(t, bson.M{"$gt": now.UTC()}, filter["expiry"])
}

func TestNewDocument(t *testing.T) {
	expiry := time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.FixedZone("CET", 3600))

	doc := newDocument("session:abc", []byte(`{"a":1}`), expiry)

	assert.Equal(t, "session:abc", doc.Key)
	assert.Equal(t, `{"a":1}`, doc.Data)
	assert.Equal(t, time.UTC, doc.Expiry.Location())
	assert.Equal(t, 123000000, doc.Expiry.Nanosecond())
	assert.True(t, expiry.Truncate(time.Millisecond).Equal(doc.Expiry))
}

func TestDocumentBSON(t *testing.T) {
	doc := newDocument("session:abc", []byte(`{"a":1}`), time.Unix(1700000000, 0))

	raw, err := bson.Marshal(doc)
	assert.NoError(t, err)

	var decoded document
	assert.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, doc.Key, decoded.Key)
	assert.Equal(t, doc.Data, decoded.Data)
	assert.True(t, doc.Expiry.Equal(decoded.Expiry))
}
