package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single prescribed exercise within a Session.
type Exercise struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID   primitive.ObjectID `bson:"coach_id" json:"coach_id"`
	SessionID primitive.ObjectID `bson:"session_id" json:"session_id"`
	Name      string             `bson:"name" json:"name"`
	Sets      int                `bson:"sets" json:"sets"`
	Reps      int                `bson:"reps" json:"reps"`
	RestTime  string             `bson:"rest_time,omitempty" json:"rest_time,omitempty"` // Free-form, e.g. "90s"
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	VideoURL  string             `bson:"video_url,omitempty" json:"video_url,omitempty"` // Optional demo video (uploaded to S3 and linked here)
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
