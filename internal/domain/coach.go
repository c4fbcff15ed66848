package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coach is the primary account holder. Every other document in the system
// references a coach through its coach_id field.
type Coach struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"` // Should be unique
	Password  string             `bson:"password,omitempty" json:"-"` // MVP placeholder, never a real credential
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
