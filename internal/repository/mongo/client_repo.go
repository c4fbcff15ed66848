package mongo

import (
	"context"
	"errors"
	"time"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const clientCollectionName = "clients"

// mongoClientRepository implements repository.ClientRepository
type mongoClientRepository struct {
	collection *mongo.Collection
}

// NewMongoClientRepository creates a new Client repository backed by MongoDB.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{
		collection: db.Collection(clientCollectionName),
	}
}

// Create inserts a new client into the database.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	if client.Name == "" || client.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client name and coach ID are required")
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}

	client.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, client)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByCoachID retrieves all clients owned by a coach, newest first.
// ObjectIDs are monotonically increasing, so sorting on _id gives insertion order.
func (r *mongoClientRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID, nameFilter string) ([]domain.Client, error) {
	filter := bson.M{"coach_id": coachID}
	if nameFilter != "" {
		// Case-insensitive substring match on name.
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: nameFilter, Options: "i"}}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []domain.Client
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}

// CountByCoachID counts the clients owned by a coach.
func (r *mongoClientRepository) CountByCoachID(ctx context.Context, coachID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"coach_id": coachID})
}

// EnsureClientIndexes creates necessary indexes for the clients collection.
func EnsureClientIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Index for the main query pattern: listing/counting a coach's clients
			Keys:    bson.D{{Key: "coach_id", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal, see EnsureCoachIndexes.
	}
}
