package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InviteStatus tracks the lifecycle of an invite. This service only ever
// writes "sent"; transitions happen elsewhere (or not at all in the MVP).
type InviteStatus string

const (
	InviteStatusSent InviteStatus = "sent"
)

// Invite is a pending invitation from a coach to a prospective client.
type Invite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID   primitive.ObjectID `bson:"coach_id" json:"coach_id"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	Status    InviteStatus       `bson:"status" json:"status"`
	Token     string             `bson:"token" json:"token"` // Opaque token embedded in the invite link
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
