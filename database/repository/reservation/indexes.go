package reservationRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the reservation indexes. The unique slot index is the
// storage-level guarantee that at most one reservation exists per
// (proId, date, time) triple; two requests racing past the in-service
// conflict check cannot both insert.
func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slotIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "proId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	idIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	clientIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{slotIdx, idIdx, clientIdx})
	return err
}
