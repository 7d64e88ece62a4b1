// Package mongo stores sessions in a MongoDB collection using
// go.mongodb.org/mongo-driver/v2.
//
// Each session is one document:
//
//	{ "_id": "session:<sid>", "data": "<json payload>", "expiry": ISODate(...) }
//
// EnsureIndexes creates a TTL index on "expiry" with expireAfterSeconds 0, so
// the server deletes documents once their expiry passes. The TTL monitor runs
// about once a minute; Fetch also filters on expiry so a stale document is
// never returned in the meantime.
//
// # Usage
//
//	coll, err := mongo.NewCollection(ctx, mongo.Config{
//		ConnectionURL: "mongodb://localhost:27017",
//		Database:      "app",
//		Collection:    "sessions",
//	})
//	if err != nil {
//		return err
//	}
//	store := mongo.NewStorage(coll)
//	if err := store.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//	manager := session.New(session.WithStore(store))
package mongo
