package service

import (
	"context"
	"testing"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/repository"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProgramRepo struct {
	programs map[primitive.ObjectID]*domain.Program
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: map[primitive.ObjectID]*domain.Program{}}
}

func (f *fakeProgramRepo) Create(_ context.Context, program *domain.Program) (primitive.ObjectID, error) {
	program.ID = primitive.NewObjectID()
	program.SessionsCount = 0
	cp := *program
	f.programs[program.ID] = &cp
	return program.ID, nil
}

func (f *fakeProgramRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Program, error) {
	if p, ok := f.programs[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProgramRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.Program, error) {
	var out []domain.Program
	for _, p := range f.programs {
		if p.CoachID == coachID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProgramRepo) IncrementSessionsCount(_ context.Context, id primitive.ObjectID) error {
	p, ok := f.programs[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.SessionsCount++
	return nil
}

type fakeSessionRepo struct {
	sessions []domain.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.Session) (primitive.ObjectID, error) {
	session.ID = primitive.NewObjectID()
	f.sessions = append(f.sessions, *session)
	return session.ID, nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Session, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSessionRepo) GetByProgramID(_ context.Context, programID primitive.ObjectID) ([]domain.Session, error) {
	var out []domain.Session
	for _, s := range f.sessions { // insertion order
		if s.ProgramID == programID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func (f *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	f.exercises = append(f.exercises, *exercise)
	return exercise.ID, nil
}

func (f *fakeExerciseRepo) GetBySessionID(_ context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range f.exercises { // insertion order
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newProgramServiceForTest() (ProgramService, *fakeProgramRepo, *fakeSessionRepo, *fakeExerciseRepo, *fakeActivityRepo) {
	programRepo := newFakeProgramRepo()
	sessionRepo := &fakeSessionRepo{}
	exerciseRepo := &fakeExerciseRepo{}
	activityRepo := &fakeActivityRepo{}
	svc := NewProgramService(programRepo, sessionRepo, exerciseRepo, activityRepo)
	return svc, programRepo, sessionRepo, exerciseRepo, activityRepo
}

func TestCreateProgram_WritesActivity(t *testing.T) {
	svc, programRepo, _, _, activityRepo := newProgramServiceForTest()
	coachID := primitive.NewObjectID()

	programID, err := svc.CreateProgram(context.Background(), coachID, "Strength Block", "8 weeks")
	require.NoError(t, err)

	program, err := programRepo.GetByID(context.Background(), programID)
	require.NoError(t, err)
	require.Equal(t, 0, program.SessionsCount)

	require.Len(t, activityRepo.activities, 1)
	require.Equal(t, domain.ActivityTypeProgram, activityRepo.activities[0].Type)
	require.Equal(t, "Created program Strength Block", activityRepo.activities[0].Message)
}

func TestAddSession_IncrementsSessionsCount(t *testing.T) {
	svc, _, _, _, _ := newProgramServiceForTest()
	coachID := primitive.NewObjectID()

	programID, err := svc.CreateProgram(context.Background(), coachID, "Hypertrophy", "")
	require.NoError(t, err)

	const n = 4
	for i := 0; i < n; i++ {
		_, err := svc.AddSession(context.Background(), coachID, programID, "Day")
		require.NoError(t, err)
	}

	detail, err := svc.GetProgram(context.Background(), programID)
	require.NoError(t, err)
	require.Equal(t, n, detail.Program.SessionsCount)
	require.Len(t, detail.Sessions, n)
}

func TestAddSession_UnknownProgramWritesNothing(t *testing.T) {
	svc, _, sessionRepo, _, _ := newProgramServiceForTest()

	_, err := svc.AddSession(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "Day 1")
	require.ErrorIs(t, err, ErrProgramNotFound)
	require.Empty(t, sessionRepo.sessions)
}

func TestGetProgram_NotFound(t *testing.T) {
	svc, _, _, _, _ := newProgramServiceForTest()

	_, err := svc.GetProgram(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrProgramNotFound)
}

func TestGetSession_NotFound(t *testing.T) {
	svc, _, _, _, _ := newProgramServiceForTest()

	_, err := svc.GetSession(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAddExercise_RoundTripsThroughSessionDetail(t *testing.T) {
	svc, _, _, _, _ := newProgramServiceForTest()
	coachID := primitive.NewObjectID()

	programID, err := svc.CreateProgram(context.Background(), coachID, "Legs", "")
	require.NoError(t, err)
	sessionID, err := svc.AddSession(context.Background(), coachID, programID, "Day 1")
	require.NoError(t, err)

	_, err = svc.AddExercise(context.Background(), &domain.Exercise{
		CoachID:   coachID,
		SessionID: sessionID,
		Name:      "Squat",
		Sets:      3,
		Reps:      10,
	})
	require.NoError(t, err)

	detail, err := svc.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, detail.Exercises, 1)
	require.Equal(t, "Squat", detail.Exercises[0].Name)
	require.Equal(t, 3, detail.Exercises[0].Sets)
	require.Equal(t, 10, detail.Exercises[0].Reps)
}

func TestSessionsOrderedByInsertion(t *testing.T) {
	svc, _, _, _, _ := newProgramServiceForTest()
	coachID := primitive.NewObjectID()

	programID, err := svc.CreateProgram(context.Background(), coachID, "Block", "")
	require.NoError(t, err)

	titles := []string{"Day 1", "Day 2", "Day 3"}
	for _, title := range titles {
		_, err := svc.AddSession(context.Background(), coachID, programID, title)
		require.NoError(t, err)
	}

	detail, err := svc.GetProgram(context.Background(), programID)
	require.NoError(t, err)
	require.Len(t, detail.Sessions, len(titles))
	for i, s := range detail.Sessions {
		require.Equal(t, titles[i], s.Title)
	}
}
