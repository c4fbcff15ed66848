package service

import (
	"context"
	"errors"
	"fmt"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrClientIDMismatch = errors.New("client_id in body does not match client_id in path")
)

// ClientService manages a coach's client roster, invites, and notes.
type ClientService interface {
	ListClients(ctx context.Context, coachID primitive.ObjectID, nameFilter string) ([]domain.Client, error)
	AddClient(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	SendInvite(ctx context.Context, coachID primitive.ObjectID, email, message string) (*domain.Invite, error)
	AddNote(ctx context.Context, coachID, pathClientID, bodyClientID primitive.ObjectID, content string) (primitive.ObjectID, error)
}

// --- Service Implementation ---

type clientService struct {
	clientRepo   repository.ClientRepository
	inviteRepo   repository.InviteRepository
	noteRepo     repository.NoteRepository
	activityRepo repository.ActivityRepository
}

// NewClientService creates a new instance of clientService.
func NewClientService(
	clientRepo repository.ClientRepository,
	inviteRepo repository.InviteRepository,
	noteRepo repository.NoteRepository,
	activityRepo repository.ActivityRepository,
) ClientService {
	return &clientService{
		clientRepo:   clientRepo,
		inviteRepo:   inviteRepo,
		noteRepo:     noteRepo,
		activityRepo: activityRepo,
	}
}

// ListClients retrieves the coach's clients, newest first, optionally
// filtered by a case-insensitive substring match on name.
func (s *clientService) ListClients(ctx context.Context, coachID primitive.ObjectID, nameFilter string) ([]domain.Client, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}

	clients, err := s.clientRepo.GetByCoachID(ctx, coachID, nameFilter)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

// AddClient inserts a new client and appends an audit entry. The two writes
// are not atomic; a failure between them leaves a client with no activity
// record, which is accepted behavior.
func (s *clientService) AddClient(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	if client == nil || client.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("coach ID is required")
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}

	clientID, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		return primitive.NilObjectID, err
	}

	_, err = s.activityRepo.Create(ctx, &domain.Activity{
		CoachID:  client.CoachID,
		ClientID: &clientID,
		Type:     domain.ActivityTypeClient,
		Message:  fmt.Sprintf("Added client %s", client.Name),
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	return clientID, nil
}

// SendInvite records an invite (with a fresh link token) and appends an audit
// entry. Same non-atomic write pair as AddClient.
func (s *clientService) SendInvite(ctx context.Context, coachID primitive.ObjectID, email, message string) (*domain.Invite, error) {
	if coachID == primitive.NilObjectID || email == "" {
		return nil, errors.New("coach ID and email are required")
	}

	invite := &domain.Invite{
		CoachID: coachID,
		Email:   email,
		Message: message,
		Status:  domain.InviteStatusSent,
		Token:   uuid.NewString(),
	}

	inviteID, err := s.inviteRepo.Create(ctx, invite)
	if err != nil {
		return nil, err
	}
	invite.ID = inviteID

	_, err = s.activityRepo.Create(ctx, &domain.Activity{
		CoachID: coachID,
		Type:    domain.ActivityTypeInvite,
		Message: fmt.Sprintf("Invite sent to %s", email),
	})
	if err != nil {
		return nil, err
	}

	return invite, nil
}

// AddNote inserts a coaching note for a client. The body's client_id must
// match the path's client_id; on mismatch nothing is written.
func (s *clientService) AddNote(ctx context.Context, coachID, pathClientID, bodyClientID primitive.ObjectID, content string) (primitive.ObjectID, error) {
	if coachID == primitive.NilObjectID || pathClientID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("coach ID and client ID are required")
	}
	if bodyClientID != pathClientID {
		return primitive.NilObjectID, ErrClientIDMismatch
	}

	return s.noteRepo.Create(ctx, &domain.Note{
		CoachID:  coachID,
		ClientID: pathClientID,
		Content:  content,
	})
}
