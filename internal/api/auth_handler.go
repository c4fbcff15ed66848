package api

import (
	"net/http"

	"brocoachme/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	CoachID string `json:"coach_id,omitempty"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// --- Handler Methods ---

// Login resolves (or creates) a coach account by email. The password is
// accepted unconditionally; this is an MVP mock, not a security boundary.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coach, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		CoachID: coach.ID.Hex(),
		Message: "Logged in",
		Token:   token,
	})
}
