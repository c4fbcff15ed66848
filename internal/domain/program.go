package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a training program owned by a coach, composed of Sessions.
type Program struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID     primitive.ObjectID `bson:"coach_id" json:"coach_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	// SessionsCount is a denormalized counter, incremented on every session
	// create and never recomputed from the sessions collection.
	SessionsCount int       `bson:"sessions_count" json:"sessions_count"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
