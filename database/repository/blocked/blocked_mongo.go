package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"xscheduler/database"
	"xscheduler/models"
)

// MongoBlockedTimeRepo implements BlockedTimeRepository using MongoDB.
type MongoBlockedTimeRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedTimeRepo constructs a new instance of MongoBlockedTimeRepo.
func NewMongoBlockedTimeRepo() BlockedTimeRepository {
	return &MongoBlockedTimeRepo{
		coll: database.DB().Collection("blocked_times"),
	}
}

func (repo *MongoBlockedTimeRepo) GetByID(id string) (*models.BlockedTime, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var block models.BlockedTime
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&block); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching blocked time %s: %w", id, err)
	}
	return &block, nil
}

func (repo *MongoBlockedTimeRepo) Create(block *models.BlockedTime) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to insert blocked time: %w", err)
	}
	return nil
}

func (repo *MongoBlockedTimeRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blocked time %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blocked time %s not found", id)
	}
	return nil
}

func (repo *MongoBlockedTimeRepo) FindOverlapping(providerID string, start, end time.Time) ([]models.BlockedTime, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"start":      bson.M{"$lt": end},
		"end":        bson.M{"$gt": start},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedTime
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocked times: %w", err)
	}
	return blocks, nil
}
