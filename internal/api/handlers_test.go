package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/repository"
	"brocoachme/coach-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes so handler tests run the real service layer
// end to end without a MongoDB instance.

type memCoachRepo struct{ coaches []domain.Coach }

func (m *memCoachRepo) Create(_ context.Context, c *domain.Coach) (primitive.ObjectID, error) {
	c.ID = primitive.NewObjectID()
	m.coaches = append(m.coaches, *c)
	return c.ID, nil
}
func (m *memCoachRepo) GetByEmail(_ context.Context, email string) (*domain.Coach, error) {
	for _, c := range m.coaches {
		if c.Email == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *memCoachRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	for _, c := range m.coaches {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memClientRepo struct{ clients []domain.Client }

func (m *memClientRepo) Create(_ context.Context, c *domain.Client) (primitive.ObjectID, error) {
	c.ID = primitive.NewObjectID()
	if c.Status == "" {
		c.Status = domain.ClientStatusActive
	}
	m.clients = append(m.clients, *c)
	return c.ID, nil
}
func (m *memClientRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID, nameFilter string) ([]domain.Client, error) {
	var out []domain.Client
	for i := len(m.clients) - 1; i >= 0; i-- { // newest first
		c := m.clients[i]
		if c.CoachID != coachID {
			continue
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(nameFilter)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (m *memClientRepo) CountByCoachID(_ context.Context, coachID primitive.ObjectID) (int64, error) {
	var n int64
	for _, c := range m.clients {
		if c.CoachID == coachID {
			n++
		}
	}
	return n, nil
}

type memInviteRepo struct{ invites []domain.Invite }

func (m *memInviteRepo) Create(_ context.Context, inv *domain.Invite) (primitive.ObjectID, error) {
	inv.ID = primitive.NewObjectID()
	m.invites = append(m.invites, *inv)
	return inv.ID, nil
}
func (m *memInviteRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.Invite, error) {
	var out []domain.Invite
	for _, inv := range m.invites {
		if inv.CoachID == coachID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type memNoteRepo struct{ notes []domain.Note }

func (m *memNoteRepo) Create(_ context.Context, n *domain.Note) (primitive.ObjectID, error) {
	n.ID = primitive.NewObjectID()
	m.notes = append(m.notes, *n)
	return n.ID, nil
}
func (m *memNoteRepo) GetByClientID(_ context.Context, clientID primitive.ObjectID) ([]domain.Note, error) {
	var out []domain.Note
	for _, n := range m.notes {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out, nil
}

type memActivityRepo struct{ activities []domain.Activity }

func (m *memActivityRepo) Create(_ context.Context, a *domain.Activity) (primitive.ObjectID, error) {
	a.ID = primitive.NewObjectID()
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}
	m.activities = append(m.activities, *a)
	return a.ID, nil
}
func (m *memActivityRepo) GetRecentByCoachID(_ context.Context, coachID primitive.ObjectID, limit int64) ([]domain.Activity, error) {
	var out []domain.Activity
	for i := len(m.activities) - 1; i >= 0; i-- {
		if m.activities[i].CoachID == coachID {
			out = append(out, m.activities[i])
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

type memProgramRepo struct{ programs []domain.Program }

func (m *memProgramRepo) Create(_ context.Context, p *domain.Program) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	p.SessionsCount = 0
	m.programs = append(m.programs, *p)
	return p.ID, nil
}
func (m *memProgramRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Program, error) {
	for _, p := range m.programs {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *memProgramRepo) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.Program, error) {
	var out []domain.Program
	for i := len(m.programs) - 1; i >= 0; i-- {
		if m.programs[i].CoachID == coachID {
			out = append(out, m.programs[i])
		}
	}
	return out, nil
}
func (m *memProgramRepo) IncrementSessionsCount(_ context.Context, id primitive.ObjectID) error {
	for i := range m.programs {
		if m.programs[i].ID == id {
			m.programs[i].SessionsCount++
			return nil
		}
	}
	return repository.ErrNotFound
}

type memSessionRepo struct{ sessions []domain.Session }

func (m *memSessionRepo) Create(_ context.Context, s *domain.Session) (primitive.ObjectID, error) {
	s.ID = primitive.NewObjectID()
	m.sessions = append(m.sessions, *s)
	return s.ID, nil
}
func (m *memSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Session, error) {
	for _, s := range m.sessions {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *memSessionRepo) GetByProgramID(_ context.Context, programID primitive.ObjectID) ([]domain.Session, error) {
	var out []domain.Session
	for _, s := range m.sessions {
		if s.ProgramID == programID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memExerciseRepo struct{ exercises []domain.Exercise }

func (m *memExerciseRepo) Create(_ context.Context, e *domain.Exercise) (primitive.ObjectID, error) {
	e.ID = primitive.NewObjectID()
	m.exercises = append(m.exercises, *e)
	return e.ID, nil
}
func (m *memExerciseRepo) GetBySessionID(_ context.Context, sessionID primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range m.exercises {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memFileStorage struct{}

func (memFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://bucket.test/" + objectKey + "?sig=put", nil
}
func (memFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://bucket.test/" + objectKey + "?sig=get", nil
}

type testEnv struct {
	router   *gin.Engine
	notes    *memNoteRepo
	sessions *memSessionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	coachRepo := &memCoachRepo{}
	clientRepo := &memClientRepo{}
	inviteRepo := &memInviteRepo{}
	noteRepo := &memNoteRepo{}
	activityRepo := &memActivityRepo{}
	programRepo := &memProgramRepo{}
	sessionRepo := &memSessionRepo{}
	exerciseRepo := &memExerciseRepo{}

	authService := service.NewAuthService(coachRepo, "test-secret", time.Hour)
	dashboardService := service.NewDashboardService(clientRepo, activityRepo)
	clientService := service.NewClientService(clientRepo, inviteRepo, noteRepo, activityRepo)
	programService := service.NewProgramService(programRepo, sessionRepo, exerciseRepo, activityRepo)
	mediaService := service.NewMediaService(memFileStorage{})

	router := gin.New()
	SetupRoutes(router, nil, authService, dashboardService, clientService, programService, mediaService)

	return &testEnv{router: router, notes: noteRepo, sessions: sessionRepo}
}

// doJSON issues a request with an optional JSON body and decodes the JSON reply.
func (e *testEnv) doJSON(t *testing.T, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// doJSONList is doJSON for endpoints returning a top-level JSON array.
func (e *testEnv) doJSONList(t *testing.T, method, target string) (int, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, http.NoBody)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var decoded []map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// login creates (or resolves) a coach and returns its hex ID.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	code, body := e.doJSON(t, http.MethodPost, "/auth/login", gin.H{"email": email, "password": "pw"})
	require.Equal(t, http.StatusOK, code)
	coachID, _ := body["coach_id"].(string)
	require.NotEmpty(t, coachID)
	return coachID
}
