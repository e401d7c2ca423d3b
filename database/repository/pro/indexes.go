package proRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for frequently used lookups.
func (r *MongoProDetailsRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	proIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "proId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	serviceIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "services.id", Value: 1}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{proIdx, serviceIdx})
	return err
}
