package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientStatus tracks where a client is in the onboarding flow.
type ClientStatus string

const (
	ClientStatusActive     ClientStatus = "Active"
	ClientStatusInvited    ClientStatus = "Invited"
	ClientStatusInProgress ClientStatus = "In Progress"
)

// Client represents a person coached by a Coach.
type Client struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID      primitive.ObjectID `bson:"coach_id" json:"coach_id"` // Owning coach
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Status       ClientStatus       `bson:"status" json:"status"` // Defaults to "Active"
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	LastActivity string             `bson:"last_activity,omitempty" json:"last_activity,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
