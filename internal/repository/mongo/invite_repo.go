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

const inviteCollectionName = "invites"

// mongoInviteRepository implements repository.InviteRepository
type mongoInviteRepository struct {
	collection *mongo.Collection
}

// NewMongoInviteRepository creates a new Invite repository backed by MongoDB.
func NewMongoInviteRepository(db *mongo.Database) repository.InviteRepository {
	return &mongoInviteRepository{
		collection: db.Collection(inviteCollectionName),
	}
}

// Create inserts a new invite.
func (r *mongoInviteRepository) Create(ctx context.Context, invite *domain.Invite) (primitive.ObjectID, error) {
	if invite.Email == "" || invite.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("invite email and coach ID are required")
	}
	if invite.Status == "" {
		invite.Status = domain.InviteStatusSent
	}

	invite.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	invite.CreatedAt = now
	invite.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, invite)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByCoachID retrieves all invites sent by a coach, newest first.
func (r *mongoInviteRepository) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Invite, error) {
	filter := bson.M{"coach_id": coachID}
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invites []domain.Invite
	if err = cursor.All(ctx, &invites); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return invites, nil
}

// EnsureInviteIndexes creates necessary indexes for the invites collection.
func EnsureInviteIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "coach_id", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
