package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType classifies an audit trail entry by the action that produced it.
type ActivityType string

const (
	ActivityTypeClient  ActivityType = "client"
	ActivityTypeInvite  ActivityType = "invite"
	ActivityTypeProgram ActivityType = "program"
	ActivityTypeInfo    ActivityType = "info"
)

// Activity is an append-only audit record written alongside other operations
// and surfaced on the dashboard. It references Coach/Client loosely; there is
// no guarantee the referenced documents still exist.
type Activity struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CoachID    primitive.ObjectID  `bson:"coach_id" json:"coach_id"`
	ClientID   *primitive.ObjectID `bson:"client_id,omitempty" json:"client_id,omitempty"` // Pointer for nullability
	Type       ActivityType        `bson:"type" json:"type"`
	Message    string              `bson:"message" json:"message"`
	OccurredAt time.Time           `bson:"occurred_at" json:"occurred_at"`
}
