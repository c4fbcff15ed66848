package repository

import (
	"context"

	"brocoachme/coach-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CoachRepository defines the interface for interacting with coach data.
type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Coach, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
}

// ClientRepository defines the interface for interacting with client data.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	// GetByCoachID lists a coach's clients, newest first. nameFilter, when
	// non-empty, restricts results to names containing it (case-insensitive).
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID, nameFilter string) ([]domain.Client, error)
	CountByCoachID(ctx context.Context, coachID primitive.ObjectID) (int64, error)
}

// InviteRepository defines the interface for interacting with invite data.
type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) (primitive.ObjectID, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Invite, error)
}

// ProgramRepository defines the interface for interacting with program data.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Program, error)
	// IncrementSessionsCount bumps the denormalized counter by one.
	IncrementSessionsCount(ctx context.Context, id primitive.ObjectID) error
}

// SessionRepository defines the interface for interacting with session data.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Session, error)
	// GetByProgramID lists sessions in insertion order (oldest first).
	GetByProgramID(ctx context.Context, programID primitive.ObjectID) ([]domain.Session, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// GetBySessionID lists exercises in insertion order (oldest first).
	GetBySessionID(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error)
}

// NoteRepository defines the interface for interacting with note data.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) (primitive.ObjectID, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Note, error)
}

// ActivityRepository defines the interface for interacting with the audit trail.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error)
	// GetRecentByCoachID returns the most recent entries by occurred_at, newest first.
	GetRecentByCoachID(ctx context.Context, coachID primitive.ObjectID, limit int64) ([]domain.Activity, error)
}
