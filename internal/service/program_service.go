package service

import (
	"context"
	"errors"
	"fmt"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound = errors.New("program not found")
	ErrSessionNotFound = errors.New("session not found")
)

// ProgramDetail is a program together with its sessions in insertion order.
type ProgramDetail struct {
	Program  *domain.Program
	Sessions []domain.Session
}

// SessionDetail is a session together with its exercises in insertion order.
type SessionDetail struct {
	Session   *domain.Session
	Exercises []domain.Exercise
}

// ProgramService manages training programs and their sessions and exercises.
type ProgramService interface {
	CreateProgram(ctx context.Context, coachID primitive.ObjectID, title, description string) (primitive.ObjectID, error)
	ListPrograms(ctx context.Context, coachID primitive.ObjectID) ([]domain.Program, error)
	GetProgram(ctx context.Context, programID primitive.ObjectID) (*ProgramDetail, error)
	AddSession(ctx context.Context, coachID, programID primitive.ObjectID, title string) (primitive.ObjectID, error)
	GetSession(ctx context.Context, sessionID primitive.ObjectID) (*SessionDetail, error)
	AddExercise(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
}

// --- Service Implementation ---

type programService struct {
	programRepo  repository.ProgramRepository
	sessionRepo  repository.SessionRepository
	exerciseRepo repository.ExerciseRepository
	activityRepo repository.ActivityRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(
	programRepo repository.ProgramRepository,
	sessionRepo repository.SessionRepository,
	exerciseRepo repository.ExerciseRepository,
	activityRepo repository.ActivityRepository,
) ProgramService {
	return &programService{
		programRepo:  programRepo,
		sessionRepo:  sessionRepo,
		exerciseRepo: exerciseRepo,
		activityRepo: activityRepo,
	}
}

// CreateProgram inserts a program with a zeroed sessions_count and appends an
// audit entry (non-atomic pair, accepted).
func (s *programService) CreateProgram(ctx context.Context, coachID primitive.ObjectID, title, description string) (primitive.ObjectID, error) {
	if coachID == primitive.NilObjectID || title == "" {
		return primitive.NilObjectID, errors.New("coach ID and title are required")
	}

	programID, err := s.programRepo.Create(ctx, &domain.Program{
		CoachID:     coachID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	_, err = s.activityRepo.Create(ctx, &domain.Activity{
		CoachID: coachID,
		Type:    domain.ActivityTypeProgram,
		Message: fmt.Sprintf("Created program %s", title),
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	return programID, nil
}

// ListPrograms retrieves the coach's programs, newest first.
func (s *programService) ListPrograms(ctx context.Context, coachID primitive.ObjectID) ([]domain.Program, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}

	programs, err := s.programRepo.GetByCoachID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if programs == nil {
		programs = []domain.Program{}
	}
	return programs, nil
}

// GetProgram retrieves a program and its sessions in insertion order.
func (s *programService) GetProgram(ctx context.Context, programID primitive.ObjectID) (*ProgramDetail, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	sessions, err := s.sessionRepo.GetByProgramID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	return &ProgramDetail{Program: program, Sessions: sessions}, nil
}

// AddSession inserts a session under a program, then increments the program's
// sessions_count. The program's existence is checked first so the counter is
// never bumped on a missing program. The insert and the increment are still
// not atomic; if the increment fails the counter undercounts, which is
// accepted behavior.
func (s *programService) AddSession(ctx context.Context, coachID, programID primitive.ObjectID, title string) (primitive.ObjectID, error) {
	if coachID == primitive.NilObjectID || programID == primitive.NilObjectID || title == "" {
		return primitive.NilObjectID, errors.New("coach ID, program ID, and title are required")
	}

	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrProgramNotFound
		}
		return primitive.NilObjectID, err
	}

	sessionID, err := s.sessionRepo.Create(ctx, &domain.Session{
		CoachID:   coachID,
		ProgramID: programID,
		Title:     title,
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err := s.programRepo.IncrementSessionsCount(ctx, programID); err != nil {
		return primitive.NilObjectID, err
	}

	return sessionID, nil
}

// GetSession retrieves a session and its exercises in insertion order.
func (s *programService) GetSession(ctx context.Context, sessionID primitive.ObjectID) (*SessionDetail, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	exercises, err := s.exerciseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	return &SessionDetail{Session: session, Exercises: exercises}, nil
}

// AddExercise inserts an exercise under a session.
func (s *programService) AddExercise(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise == nil || exercise.CoachID == primitive.NilObjectID || exercise.SessionID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("coach ID and session ID are required")
	}

	return s.exerciseRepo.Create(ctx, exercise)
}
