package proRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beautyconnect/database"
	"beautyconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrServiceNotFound is returned when a catalog entry does not exist.
var ErrServiceNotFound = errors.New("service not found")

// MongoProDetailsRepo implements ProDetailsRepository using MongoDB.
type MongoProDetailsRepo struct {
	coll *mongo.Collection
}

// NewMongoProDetailsRepo creates a new ProDetailsRepository backed by the
// "proDetails" collection.
func NewMongoProDetailsRepo() ProDetailsRepository {
	coll := database.DB().Collection("proDetails")
	repo := &MongoProDetailsRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("proRepo: failed to ensure indexes: %v", err))
	}
	return repo
}

func (r *MongoProDetailsRepo) GetByProID(ctx context.Context, proID string) (*models.ProDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var details models.ProDetails
	err := r.coll.FindOne(ctx, bson.M{"proId": proID}).Decode(&details)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch details for pro %s: %w", proID, err)
	}
	return &details, nil
}

func (r *MongoProDetailsRepo) AddService(ctx context.Context, proID string, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{
			"proId":        proID,
			"availability": []models.AvailabilityWindow{},
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"proId": proID}, update, opts); err != nil {
		return fmt.Errorf("failed to add service for pro %s: %w", proID, err)
	}
	return nil
}

func (r *MongoProDetailsRepo) UpdateService(ctx context.Context, proID string, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"proId": proID, "services.id": svc.ID}
	update := bson.M{
		"$set": bson.M{
			"services.$": svc,
			"updatedAt":  time.Now(),
		},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service %s for pro %s: %w", svc.ID, proID, err)
	}
	if result.MatchedCount == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *MongoProDetailsRepo) DeleteService(ctx context.Context, proID, serviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{
		"$pull": bson.M{"services": bson.M{"id": serviceID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"proId": proID}, update)
	if err != nil {
		return fmt.Errorf("failed to delete service %s for pro %s: %w", serviceID, proID, err)
	}
	if result.ModifiedCount == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *MongoProDetailsRepo) SetAvailability(ctx context.Context, proID string, availability []models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{
		"$set": bson.M{
			"availability": availability,
			"updatedAt":    time.Now(),
		},
		"$setOnInsert": bson.M{
			"proId":    proID,
			"services": []models.Service{},
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"proId": proID}, update, opts); err != nil {
		return fmt.Errorf("failed to set availability for pro %s: %w", proID, err)
	}
	return nil
}
