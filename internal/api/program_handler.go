package api

import (
	"errors"
	"net/http"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgramHandler covers training programs, their sessions, and exercises.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

type ProgramCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type SessionCreateRequest struct {
	Title string `json:"title" binding:"required"`
}

type ExerciseCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Sets     int    `json:"sets" binding:"required"`
	Reps     int    `json:"reps" binding:"required"`
	RestTime string `json:"rest_time"`
	Notes    string `json:"notes"`
	VideoURL string `json:"video_url"`
}

// ProgramDetailResponse is a program plus its sessions in insertion order.
type ProgramDetailResponse struct {
	Program  *domain.Program  `json:"program"`
	Sessions []domain.Session `json:"sessions"`
}

// SessionDetailResponse is a session plus its exercises in insertion order.
type SessionDetailResponse struct {
	Session   *domain.Session   `json:"session"`
	Exercises []domain.Exercise `json:"exercises"`
}

// --- Handler Methods ---

// ListPrograms returns the coach's programs, newest first.
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}

	programs, err := h.programService.ListPrograms(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list programs")
		return
	}

	c.JSON(http.StatusOK, programs)
}

// CreateProgram inserts a program and records an activity entry.
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}

	var req ProgramCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	programID, err := h.programService.CreateProgram(c.Request.Context(), coachID, req.Title, req.Description)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create program")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "program_id": programID.Hex()})
}

// GetProgram returns a program with its sessions, or 404 if absent.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	programID, ok := objectIDFromParam(c, "programId")
	if !ok {
		return
	}

	detail, err := h.programService.GetProgram(c.Request.Context(), programID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load program")
		}
		return
	}

	c.JSON(http.StatusOK, ProgramDetailResponse{
		Program:  detail.Program,
		Sessions: detail.Sessions,
	})
}

// AddSession inserts a session under a program and bumps the program's
// sessions_count. 404 if the program does not exist.
func (h *ProgramHandler) AddSession(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}
	programID, ok := objectIDFromParam(c, "programId")
	if !ok {
		return
	}

	var req SessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sessionID, err := h.programService.AddSession(c.Request.Context(), coachID, programID, req.Title)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add session")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": sessionID.Hex()})
}

// GetSession returns a session with its exercises, or 404 if absent.
func (h *ProgramHandler) GetSession(c *gin.Context) {
	sessionID, ok := objectIDFromParam(c, "sessionId")
	if !ok {
		return
	}

	detail, err := h.programService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load session")
		}
		return
	}

	c.JSON(http.StatusOK, SessionDetailResponse{
		Session:   detail.Session,
		Exercises: detail.Exercises,
	})
}

// AddExercise inserts an exercise under a session.
func (h *ProgramHandler) AddExercise(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}
	sessionID, ok := objectIDFromParam(c, "sessionId")
	if !ok {
		return
	}

	var req ExerciseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exerciseID, err := h.programService.AddExercise(c.Request.Context(), &domain.Exercise{
		CoachID:   coachID,
		SessionID: sessionID,
		Name:      req.Name,
		Sets:      req.Sets,
		Reps:      req.Reps,
		RestTime:  req.RestTime,
		Notes:     req.Notes,
		VideoURL:  req.VideoURL,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to add exercise")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exercise_id": exerciseID.Hex()})
}
