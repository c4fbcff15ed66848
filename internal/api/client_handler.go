package api

import (
	"errors"
	"net/http"

	"brocoachme/coach-app/internal/domain"
	"brocoachme/coach-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler covers the client roster, invites, and per-client notes.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- DTOs ---

type ClientCreateRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"omitempty,email"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type InviteRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message"`
}

type NoteCreateRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// --- Handler Methods ---

// ListClients returns the coach's clients, newest first. The optional q
// parameter filters by case-insensitive substring match on name.
func (h *ClientHandler) ListClients(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), coachID, c.Query("q"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// AddClient inserts a client and records an activity entry.
func (h *ClientHandler) AddClient(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}

	var req ClientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	clientID, err := h.clientService.AddClient(c.Request.Context(), &domain.Client{
		CoachID: coachID,
		Name:    req.Name,
		Email:   req.Email,
		Status:  domain.ClientStatus(req.Status),
		Notes:   req.Notes,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to add client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client_id": clientID.Hex()})
}

// SendInvite records an invite and an activity entry.
func (h *ClientHandler) SendInvite(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	invite, err := h.clientService.SendInvite(c.Request.Context(), coachID, req.Email, req.Message)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to send invite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invite_id": invite.ID.Hex()})
}

// AddNote attaches a note to a client. The body's client_id must match the
// path's client_id or the request is rejected without writing anything.
func (h *ClientHandler) AddNote(c *gin.Context) {
	coachID, ok := coachIDFromQuery(c)
	if !ok {
		return
	}
	pathClientID, ok := objectIDFromParam(c, "clientId")
	if !ok {
		return
	}

	var req NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	bodyClientID, err := primitive.ObjectIDFromHex(req.ClientID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client_id format in body")
		return
	}

	noteID, err := h.clientService.AddNote(c.Request.Context(), coachID, pathClientID, bodyClientID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrClientIDMismatch) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add note")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "note_id": noteID.Hex()})
}
