package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"xscheduler/database"
	"xscheduler/models"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	scheduleColl *mongo.Collection
	hoursColl    *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &MongoScheduleRepo{
		scheduleColl: db.Collection("provider_schedules"),
		hoursColl:    db.Collection("business_hours"),
	}
}

func (repo *MongoScheduleRepo) GetProviderDay(providerID, weekday string) (*models.ProviderSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID, "weekday": weekday, "active": true}
	var entry models.ProviderSchedule
	if err := repo.scheduleColl.FindOne(ctx, filter).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching provider schedule for %s/%s: %w", providerID, weekday, err)
	}
	return &entry, nil
}

func (repo *MongoScheduleRepo) UpsertProviderDay(entry *models.ProviderSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": entry.ProviderID, "weekday": entry.Weekday}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.scheduleColl.ReplaceOne(ctx, filter, entry, opts); err != nil {
		return fmt.Errorf("failed to upsert provider schedule: %w", err)
	}
	return nil
}

func (repo *MongoScheduleRepo) ListProviderWeek(providerID string) ([]models.ProviderSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.scheduleColl.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider schedule: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ProviderSchedule
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding provider schedule: %w", err)
	}
	return entries, nil
}

func (repo *MongoScheduleRepo) GetBusinessHours(providerID *string, weekday int) (*models.BusinessHour, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// providerId is stored as null on the all-providers record, so a nil
	// pointer filters for exactly that row.
	filter := bson.M{"providerId": providerID, "weekday": weekday}
	var entry models.BusinessHour
	if err := repo.hoursColl.FindOne(ctx, filter).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching business hours for weekday %d: %w", weekday, err)
	}
	return &entry, nil
}

func (repo *MongoScheduleRepo) UpsertBusinessHours(entry *models.BusinessHour) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": entry.ProviderID, "weekday": entry.Weekday}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.hoursColl.ReplaceOne(ctx, filter, entry, opts); err != nil {
		return fmt.Errorf("failed to upsert business hours: %w", err)
	}
	return nil
}
