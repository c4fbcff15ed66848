package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a free-form coaching note attached to a Client.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID   primitive.ObjectID `bson:"coach_id" json:"coach_id"`
	ClientID  primitive.ObjectID `bson:"client_id" json:"client_id"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
